package api

import (
	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/usecases"
)

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases,
	auth Authentication, tokenHandler TokenHandler,
) {
	r.GET("/liveness", handleLivenessProbe)
	r.POST("/token", tokenHandler.GenerateToken)

	router := r.Use(auth.Middleware)

	router.GET("/credentials", handleGetCredentials())

	router.GET("/cases", handleListCases(uc))
	router.POST("/cases", handlePostCase(uc))
	router.GET("/cases/:case_id", handleGetCase(uc))
	router.PATCH("/cases/:case_id", handlePatchCase(uc))
	router.DELETE("/cases/:case_id", handleDeleteCase(uc))
	router.POST("/cases/:case_id/publish", handlePublishCase(uc))
	router.GET("/cases/:case_id/contributions", handleListCaseContributions(uc))

	router.POST("/cases/:case_id/files",
		limits.RequestSizeLimiter(conf.MaxCaseFileSize), handlePostCaseFile(uc))
	router.GET("/cases/files/:file_id/download_link", handleDownloadCaseFile(uc))
	router.GET("/cases/files/:file_id/download", handleDownloadCaseFileContent(uc))
	router.DELETE("/cases/files/:file_id", handleDeleteCaseFile(uc))

	router.GET("/contributions", handleListContributions(uc))
	router.POST("/contributions", handlePostContribution(uc))
	router.GET("/contributions/:contribution_id", handleGetContribution(uc))
	router.POST("/contributions/:contribution_id/review", handleReviewContribution(uc))

	router.GET("/ai-rules", handleListAiRules(uc))
	router.POST("/ai-rules", handlePostAiRule(uc))
	router.POST("/ai-rules/reorder", handleReorderAiRules(uc))
	router.POST("/ai-rules/preview", handlePreviewAiRules(uc))
	router.GET("/ai-rules/:rule_id", handleGetAiRule(uc))
	router.PATCH("/ai-rules/:rule_id", handlePatchAiRule(uc))
	router.DELETE("/ai-rules/:rule_id", handleDeleteAiRule(uc))

	router.GET("/settings", handleListSettings(uc))
	router.GET("/settings/:key", handleGetSetting(uc))
	router.PUT("/settings/:key", handlePutSetting(uc))

	router.GET("/users", handleListUsers(uc))
	router.POST("/users", handlePostUser(uc))
	router.POST("/users/merge/preview", handlePreviewAccountMerge(uc))
	router.POST("/users/merge", handleExecuteAccountMerge(uc))
	router.GET("/users/merges", handleListAccountMerges(uc))
	router.GET("/users/:user_id", handleGetUser(uc))
	router.PATCH("/users/:user_id", handlePatchUser(uc))
	router.DELETE("/users/:user_id", handleDeleteUser(uc))

	router.POST("/device-tokens", handleRegisterDeviceToken(uc))
	router.GET("/notifications", handleListNotifications(uc))
	router.POST("/notifications/:notification_id/read", handleMarkNotificationRead(uc))
}
