package models

import "time"

type Notification struct {
	Id        string
	UserId    UserId
	Kind      NotificationKind
	Title     string
	Body      string
	Data      map[string]string
	Read      bool
	CreatedAt time.Time
}

type NotificationKind string

const (
	NotificationContributionApproved NotificationKind = "contribution_approved"
	NotificationContributionRejected NotificationKind = "contribution_rejected"
	NotificationCasePublished        NotificationKind = "case_published"
	NotificationCaseFunded           NotificationKind = "case_funded"
)

type CreateNotificationAttributes struct {
	UserId UserId
	Kind   NotificationKind
	Title  string
	Body   string
	Data   map[string]string
}

type DeviceToken struct {
	Id        string
	UserId    UserId
	Token     string
	Platform  DevicePlatform
	CreatedAt time.Time
}

type DevicePlatform string

const (
	PlatformIos     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

func DevicePlatformFrom(s string) (DevicePlatform, bool) {
	switch DevicePlatform(s) {
	case PlatformIos, PlatformAndroid, PlatformWeb:
		return DevicePlatform(s), true
	}
	return "", false
}

type RegisterDeviceTokenAttributes struct {
	UserId   UserId
	Token    string
	Platform DevicePlatform
}
