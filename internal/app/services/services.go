package services

// Services defined in this package:
// - AuthService: admin login and credential changes
// - YearService: academic years and the departments linked to them
// - DepartmentService: the global department list
// - TransactionService: the collection/expense ledger and the expense report
// - StudentService: the roster and its fee ledger
// - SettingService: stored settings such as the default student fee
// - ReportService: dashboard, collection breakdown and fee status summaries
// - MaintenanceService: factory reset and collection purge for operators
