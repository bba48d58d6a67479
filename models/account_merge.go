package models

import "time"

// AccountMerge reassigns a source user's related records to a target user
// across a fixed list of tables, with a backup row written first so the
// operation can be audited and manually rolled back.
type AccountMerge struct {
	Id             string
	SourceUserId   UserId
	TargetUserId   UserId
	ExecutedBy     UserId
	DeleteSource   bool
	ReassignedRows map[string][]string
	CreatedAt      time.Time
}

// MergeTables lists, per table, the user-reference column rewritten by a merge.
// The order matters: children before the users row itself is touched.
// KeyColumn is the table's primary key, recorded in the merge backup.
var MergeTables = []MergeTable{
	{Table: TableContributions, Column: "contributor_id", KeyColumn: "id"},
	{Table: TableCaseEvents, Column: "user_id", KeyColumn: "id"},
	{Table: TableNotifications, Column: "user_id", KeyColumn: "id"},
	{Table: TableDeviceTokens, Column: "user_id", KeyColumn: "id"},
	{Table: TableCases, Column: "created_by", KeyColumn: "id"},
	{Table: TableSettings, Column: "updated_by", KeyColumn: "key"},
}

type MergeTable struct {
	Table     string
	Column    string
	KeyColumn string
}

const (
	TableCases         = "cases"
	TableCaseEvents    = "case_events"
	TableContributions = "contributions"
	TableNotifications = "notifications"
	TableDeviceTokens  = "device_tokens"
	TableSettings      = "settings"
)

type AccountMergePreview struct {
	SourceUser User
	TargetUser User
	RowCounts  map[string]int
}

func (p AccountMergePreview) TotalRows() int {
	total := 0
	for _, n := range p.RowCounts {
		total += n
	}
	return total
}

type ExecuteAccountMergeAttributes struct {
	SourceUserId UserId
	TargetUserId UserId
	ExecutedBy   UserId
	DeleteSource bool
}
