package dbmodels

import (
	"time"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBAiRule struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	Template  string    `db:"template"`
	Category  string    `db:"category"`
	RuleType  string    `db:"rule_type"`
	Priority  int       `db:"priority"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_AI_RULES = "ai_rules"

var SelectAiRuleColumn = utils.ColumnList[DBAiRule]()

func AdaptAiRule(db DBAiRule) (models.AiRule, error) {
	return models.AiRule{
		Id:        db.Id,
		Name:      db.Name,
		Template:  db.Template,
		Category:  models.AiRuleCategory(db.Category),
		RuleType:  models.AiRuleType(db.RuleType),
		Priority:  db.Priority,
		Enabled:   db.Enabled,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
