package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
)

// memStore is an in-memory stand-in for the database behind every repository interface
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	admins   []*models.Admin
	years    []*models.AcademicYear
	depts    []*models.Department
	links    map[[2]int64]bool
	txs      []*models.Transaction
	students []*models.Student
	settings map[string]string

	// failWith makes every read of the report repository fail
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		links:    make(map[[2]int64]bool),
		settings: make(map[string]string),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) yearName(id int64) (string, bool) {
	for _, y := range m.years {
		if y.ID == id {
			return y.Name, true
		}
	}
	return "", false
}

func (m *memStore) deptName(id int64) (string, bool) {
	for _, d := range m.depts {
		if d.ID == id {
			return d.Name, true
		}
	}
	return "", false
}

// Admin repository

type memAdmins struct{ *memStore }

func (r memAdmins) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r memAdmins) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r memAdmins) Create(_ context.Context, admin *models.Admin) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == admin.Username {
			return 0, apperrors.ErrUsernameTaken
		}
	}
	cp := *admin
	cp.ID = r.id()
	r.admins = append(r.admins, &cp)
	return cp.ID, nil
}

func (r memAdmins) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.admins)), nil
}

func (r memAdmins) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.ID == id {
			a.PasswordHash = hash
			return nil
		}
	}
	return apperrors.ErrAdminNotFound
}

func (r memAdmins) UpdateUsername(_ context.Context, id int64, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var target *models.Admin
	for _, a := range r.admins {
		if a.Username == username && a.ID != id {
			return apperrors.ErrUsernameTaken
		}
		if a.ID == id {
			target = a
		}
	}
	if target == nil {
		return apperrors.ErrAdminNotFound
	}
	target.Username = username
	return nil
}

// Year repository

type memYears struct{ *memStore }

func (r memYears) GetAll(context.Context) ([]*models.AcademicYear, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]*models.AcademicYear(nil), r.years...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memYears) GetByID(_ context.Context, id int64) (*models.AcademicYear, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, y := range r.years {
		if y.ID == id {
			cp := *y
			return &cp, nil
		}
	}
	return nil, apperrors.ErrYearNotFound
}

func (r memYears) GetByName(_ context.Context, name string) (*models.AcademicYear, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, y := range r.years {
		if y.Name == name {
			cp := *y
			return &cp, nil
		}
	}
	return nil, apperrors.ErrYearNotFound
}

func (r memYears) Create(_ context.Context, year *models.AcademicYear) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, y := range r.years {
		if y.Name == year.Name {
			return apperrors.ErrYearAlreadyExists
		}
	}
	year.ID = r.id()
	cp := *year
	r.years = append(r.years, &cp)
	return nil
}

func (r memYears) SetActive(_ context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, y := range r.years {
		if y.ID == id {
			y.IsActive = active
			return nil
		}
	}
	return apperrors.ErrYearNotFound
}

// Department repository

type memDepts struct{ *memStore }

func (r memDepts) GetAll(context.Context) ([]*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]*models.Department(nil), r.depts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memDepts) GetByID(_ context.Context, id int64) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.depts {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r memDepts) GetByName(_ context.Context, name string) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.depts {
		if d.Name == name {
			cp := *d
			return &cp, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r memDepts) Create(_ context.Context, dept *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.depts {
		if d.Name == dept.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	dept.ID = r.id()
	cp := *dept
	r.depts = append(r.depts, &cp)
	return nil
}

func (r memDepts) GetByYearID(_ context.Context, yearID int64) ([]*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Department{}
	for _, d := range r.depts {
		if r.links[[2]int64{yearID, d.ID}] {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memDepts) LinkToYear(_ context.Context, yearID, deptID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.yearName(yearID); !ok {
		return apperrors.ErrYearNotFound
	}
	if _, ok := r.deptName(deptID); !ok {
		return apperrors.ErrDepartmentNotFound
	}
	key := [2]int64{yearID, deptID}
	if r.links[key] {
		return apperrors.ErrLinkAlreadyExists
	}
	r.links[key] = true
	return nil
}

func (r memDepts) UnlinkFromYear(_ context.Context, yearID, deptID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{yearID, deptID}
	if !r.links[key] {
		return apperrors.ErrLinkNotFound
	}
	delete(r.links, key)
	return nil
}

// Transaction repository

type memTransactions struct{ *memStore }

func (r memTransactions) Create(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx.YearID != nil {
		if _, ok := r.yearName(*tx.YearID); !ok {
			return apperrors.ErrYearNotFound
		}
	}
	if tx.DepartmentID != nil {
		if _, ok := r.deptName(*tx.DepartmentID); !ok {
			return apperrors.ErrDepartmentNotFound
		}
	}
	tx.ID = r.id()
	tx.CreatedAt = time.Now()
	cp := *tx
	r.txs = append(r.txs, &cp)
	return nil
}

func (r memTransactions) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.txs {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (r memTransactions) List(_ context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Transaction{}
	for _, t := range r.txs {
		if !filter.Year.Matches(t.YearID) || !filter.Department.Matches(t.DepartmentID) {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r memTransactions) DeleteCollections(_ context.Context, yearID, deptID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	kept := r.txs[:0]
	for _, t := range r.txs {
		if t.Type == models.TransactionCollection && t.YearID != nil && *t.YearID == yearID &&
			t.DepartmentID != nil && *t.DepartmentID == deptID {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	r.txs = kept
	return deleted, nil
}

// Student repository

type memStudents struct{ *memStore }

func (r memStudents) matches(s *models.Student, f models.StudentFilter) bool {
	return f.Year.Matches(&s.YearID) && f.Department.Matches(&s.DepartmentID)
}

func (r memStudents) List(_ context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Student{}
	for _, s := range r.students {
		if r.matches(s, filter) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r memStudents) CreateMany(_ context.Context, students []*models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range students {
		if _, ok := r.yearName(s.YearID); !ok {
			return apperrors.ErrYearNotFound
		}
		if _, ok := r.deptName(s.DepartmentID); !ok {
			return apperrors.ErrDepartmentNotFound
		}
	}
	for _, s := range students {
		s.ID = r.id()
		cp := *s
		r.students = append(r.students, &cp)
	}
	return nil
}

func (r memStudents) UpdateIdentity(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.ID == student.ID {
			s.Name = student.Name
			s.YearID = student.YearID
			s.DepartmentID = student.DepartmentID
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (r memStudents) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (r memStudents) UpdateFees(_ context.Context, id int64, totalFee, amountPaid decimal.Decimal, isPaid bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.ID == id {
			s.TotalFee = totalFee
			s.AmountPaid = amountPaid
			s.IsPaid = isPaid
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (r memStudents) BulkUpdateFees(_ context.Context, filter models.StudentFilter, totalFee decimal.Decimal) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.students {
		if r.matches(s, filter) {
			s.TotalFee = totalFee
			s.IsPaid = models.IsFeeSettled(totalFee, s.AmountPaid)
			n++
		}
	}
	return n, nil
}

func (r memStudents) LatestFee(context.Context) (decimal.Decimal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.students) == 0 {
		return decimal.Zero, false, nil
	}
	latest := r.students[0]
	for _, s := range r.students {
		if s.ID > latest.ID {
			latest = s
		}
	}
	return latest.TotalFee, true, nil
}

// Setting repository

type memSettings struct{ *memStore }

func (r memSettings) Get(_ context.Context, key string) (*models.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.settings[key]
	if !ok {
		return nil, apperrors.ErrSettingNotFound
	}
	return &models.Setting{Key: key, Value: v}, nil
}

func (r memSettings) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = value
	return nil
}

// Report repository

type memReports struct{ *memStore }

func (r memReports) Totals(_ context.Context, filter models.TransactionFilter) (decimal.Decimal, decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return decimal.Zero, decimal.Zero, r.failWith
	}
	collection, expense := decimal.Zero, decimal.Zero
	for _, t := range r.txs {
		if !filter.Year.Matches(t.YearID) || !filter.Department.Matches(t.DepartmentID) {
			continue
		}
		switch t.Type {
		case models.TransactionCollection:
			collection = collection.Add(t.Amount)
		case models.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return collection, expense, nil
}

func (r memReports) CollectionsByYear(context.Context) ([]models.YearStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	totals := map[string]decimal.Decimal{}
	for _, t := range r.txs {
		if t.Type != models.TransactionCollection || t.YearID == nil {
			continue
		}
		name, ok := r.yearName(*t.YearID)
		if !ok {
			continue
		}
		totals[name] = totals[name].Add(t.Amount)
	}
	out := []models.YearStat{}
	for name, total := range totals {
		out = append(out, models.YearStat{Year: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (r memReports) CollectionsByMode(context.Context) ([]models.ModeTotal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	totals := map[string]decimal.Decimal{}
	for _, t := range r.txs {
		if t.Type == models.TransactionCollection {
			mode := strings.ToLower(string(t.PaymentMode))
			totals[mode] = totals[mode].Add(t.Amount)
		}
	}
	out := []models.ModeTotal{}
	for mode, total := range totals {
		out = append(out, models.ModeTotal{Mode: mode, Total: total})
	}
	return out, nil
}

func (r memReports) BreakdownRows(context.Context) ([]models.BreakdownRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	type key struct{ year, dept, mode string }
	totals := map[key]decimal.Decimal{}
	for _, t := range r.txs {
		if t.Type != models.TransactionCollection || t.YearID == nil || t.DepartmentID == nil {
			continue
		}
		year, ok := r.yearName(*t.YearID)
		if !ok {
			continue
		}
		dept, ok := r.deptName(*t.DepartmentID)
		if !ok {
			continue
		}
		k := key{year, dept, string(t.PaymentMode)}
		totals[k] = totals[k].Add(t.Amount)
	}
	out := []models.BreakdownRow{}
	for k, total := range totals {
		out = append(out, models.BreakdownRow{YearName: k.year, DeptName: k.dept, Mode: k.mode, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].YearName != out[j].YearName {
			return out[i].YearName < out[j].YearName
		}
		if out[i].DeptName != out[j].DeptName {
			return out[i].DeptName < out[j].DeptName
		}
		return out[i].Mode < out[j].Mode
	})
	return out, nil
}

func (r memReports) FeeStatusRows(_ context.Context, filter models.StudentFilter) ([]models.FeeStatusRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	type key struct{ year, dept string }
	rows := map[key]*models.FeeStatusRow{}
	for _, s := range r.students {
		if !filter.Year.Matches(&s.YearID) || !filter.Department.Matches(&s.DepartmentID) {
			continue
		}
		year, _ := r.yearName(s.YearID)
		dept, _ := r.deptName(s.DepartmentID)
		k := key{year, dept}
		row, ok := rows[k]
		if !ok {
			row = &models.FeeStatusRow{YearName: year, DeptName: dept, TotalFee: decimal.Zero, AmountPaid: decimal.Zero}
			rows[k] = row
		}
		row.Students++
		if s.IsPaid {
			row.PaidCount++
		}
		row.TotalFee = row.TotalFee.Add(s.TotalFee)
		row.AmountPaid = row.AmountPaid.Add(s.AmountPaid)
	}
	out := []models.FeeStatusRow{}
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].YearName != out[j].YearName {
			return out[i].YearName < out[j].YearName
		}
		return out[i].DeptName < out[j].DeptName
	})
	return out, nil
}

// Maintenance repository

type memMaintenance struct{ *memStore }

func (r memMaintenance) FactoryReset(_ context.Context, admin *models.Admin) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cleared := map[string]int64{
		"transactions":     int64(len(r.txs)),
		"students":         int64(len(r.students)),
		"year_departments": int64(len(r.links)),
		"departments":      int64(len(r.depts)),
		"student_years":    int64(len(r.years)),
		"app_settings":     int64(len(r.settings)),
	}
	r.txs, r.students, r.depts, r.years = nil, nil, nil, nil
	r.links = make(map[[2]int64]bool)
	r.settings = make(map[string]string)
	admin.ID = r.id()
	cp := *admin
	r.admins = []*models.Admin{&cp}
	return cleared, nil
}

// test helpers

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
