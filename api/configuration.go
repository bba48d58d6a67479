package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	AppUrl              string
	Port                string
	RequestLoggingLevel string
	TokenLifetimeMinute int
	DefaultTimeout      time.Duration
	MaxCaseFileSize     int64
}
