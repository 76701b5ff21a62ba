package repositories

import (
	"reflect"
	"strings"
	"testing"

	"github.com/yigit/collegefinance/internal/app/models"
)

func TestTransactionFilterTranslation(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.TransactionFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:    "no filter adds no where clause",
			filter:  models.TransactionFilter{},
			wantSQL: "SELECT id FROM transactions",
		},
		{
			name:     "year only",
			filter:   models.TransactionFilter{Year: models.IDEquals(3)},
			wantSQL:  "SELECT id FROM transactions WHERE (year_id = $1)",
			wantArgs: []interface{}{int64(3)},
		},
		{
			name: "year, department and type",
			filter: models.TransactionFilter{
				Year:       models.IDEquals(3),
				Department: models.IDEquals(7),
				Type:       models.TransactionCollection,
			},
			wantSQL:  "SELECT id FROM transactions WHERE (year_id = $1 AND department_id = $2 AND type = $3)",
			wantArgs: []interface{}{int64(3), int64(7), "collection"},
		},
		{
			name:    "malformed id matches nothing",
			filter:  models.TransactionFilter{Year: models.ParseIDFilter("abc")},
			wantSQL: "SELECT id FROM transactions WHERE (1 = 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := applyWhere(statementBuilder().Select("id").From("transactions"), transactionConditions("", tt.filter))
			sql, args, err := q.ToSql()
			if err != nil {
				t.Fatalf("ToSql() error = %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestStudentConditionsPrefix(t *testing.T) {
	conds := studentConditions("s.", models.StudentFilter{Department: models.IDEquals(2)})
	sql, args, err := conds.ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	if !strings.Contains(sql, "s.department_id = ?") || len(args) != 1 {
		t.Errorf("sql = %q args = %v", sql, args)
	}
}
