package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegefinance/internal/app/models"
)

// matchNothing is used for filters whose value could not be parsed
var matchNothing = squirrel.Expr("1 = 0")

// idPredicate translates an optional id filter: absent adds nothing, present adds equality.
func idPredicate(column string, f models.IDFilter) (squirrel.Sqlizer, bool) {
	if !f.Present {
		return nil, false
	}
	if f.Invalid {
		return matchNothing, true
	}
	return squirrel.Eq{column: f.ID}, true
}

// transactionConditions builds the WHERE conjunction for ledger queries
func transactionConditions(prefix string, f models.TransactionFilter) squirrel.And {
	conds := squirrel.And{}
	if p, ok := idPredicate(prefix+"year_id", f.Year); ok {
		conds = append(conds, p)
	}
	if p, ok := idPredicate(prefix+"department_id", f.Department); ok {
		conds = append(conds, p)
	}
	if f.Type != "" {
		conds = append(conds, squirrel.Eq{prefix + "type": string(f.Type)})
	}
	return conds
}

// studentConditions builds the WHERE conjunction for roster queries
func studentConditions(prefix string, f models.StudentFilter) squirrel.And {
	conds := squirrel.And{}
	if p, ok := idPredicate(prefix+"year_id", f.Year); ok {
		conds = append(conds, p)
	}
	if p, ok := idPredicate(prefix+"department_id", f.Department); ok {
		conds = append(conds, p)
	}
	return conds
}

func applyWhere(q squirrel.SelectBuilder, conds squirrel.And) squirrel.SelectBuilder {
	if len(conds) == 0 {
		return q
	}
	return q.Where(conds)
}
