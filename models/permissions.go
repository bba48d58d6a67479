package models

type Permission int

const (
	CASE_READ Permission = iota
	CASE_CREATE
	CASE_UPDATE
	CASE_PUBLISH
	CASE_FILE_UPLOAD
	CONTRIBUTION_READ
	CONTRIBUTION_CREATE
	CONTRIBUTION_REVIEW
	AI_RULE_READ
	AI_RULE_WRITE
	SETTING_READ
	SETTING_WRITE
	USER_READ
	USER_CREATE
	USER_UPDATE
	USER_DELETE
	ACCOUNT_MERGE
	NOTIFICATION_READ
)

func (p Permission) String() string {
	switch p {
	case CASE_READ:
		return "CASE_READ"
	case CASE_CREATE:
		return "CASE_CREATE"
	case CASE_UPDATE:
		return "CASE_UPDATE"
	case CASE_PUBLISH:
		return "CASE_PUBLISH"
	case CASE_FILE_UPLOAD:
		return "CASE_FILE_UPLOAD"
	case CONTRIBUTION_READ:
		return "CONTRIBUTION_READ"
	case CONTRIBUTION_CREATE:
		return "CONTRIBUTION_CREATE"
	case CONTRIBUTION_REVIEW:
		return "CONTRIBUTION_REVIEW"
	case AI_RULE_READ:
		return "AI_RULE_READ"
	case AI_RULE_WRITE:
		return "AI_RULE_WRITE"
	case SETTING_READ:
		return "SETTING_READ"
	case SETTING_WRITE:
		return "SETTING_WRITE"
	case USER_READ:
		return "USER_READ"
	case USER_CREATE:
		return "USER_CREATE"
	case USER_UPDATE:
		return "USER_UPDATE"
	case USER_DELETE:
		return "USER_DELETE"
	case ACCOUNT_MERGE:
		return "ACCOUNT_MERGE"
	case NOTIFICATION_READ:
		return "NOTIFICATION_READ"
	default:
		return "UNKNOWN_PERMISSION"
	}
}

var ROLES_PERMISSIONS = map[Role][]Permission{
	VIEWER: {
		CASE_READ,
		NOTIFICATION_READ,
	},
	DONOR: {
		CASE_READ,
		CONTRIBUTION_READ,
		CONTRIBUTION_CREATE,
		NOTIFICATION_READ,
	},
	CASE_MANAGER: {
		CASE_READ,
		CASE_CREATE,
		CASE_UPDATE,
		CASE_FILE_UPLOAD,
		CONTRIBUTION_READ,
		NOTIFICATION_READ,
	},
	ADMIN: {
		CASE_READ,
		CASE_CREATE,
		CASE_UPDATE,
		CASE_PUBLISH,
		CASE_FILE_UPLOAD,
		CONTRIBUTION_READ,
		CONTRIBUTION_CREATE,
		CONTRIBUTION_REVIEW,
		AI_RULE_READ,
		AI_RULE_WRITE,
		SETTING_READ,
		SETTING_WRITE,
		USER_READ,
		USER_CREATE,
		USER_UPDATE,
		USER_DELETE,
		ACCOUNT_MERGE,
		NOTIFICATION_READ,
	},
}
