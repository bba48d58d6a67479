package dto

import (
	"time"

	"github.com/amanahq/amana-backend/models"
)

type APIAccountMerge struct {
	Id             string              `json:"id"`
	SourceUserId   string              `json:"source_user_id"`
	TargetUserId   string              `json:"target_user_id"`
	ExecutedBy     string              `json:"executed_by"`
	DeleteSource   bool                `json:"delete_source"`
	ReassignedRows map[string][]string `json:"reassigned_rows"`
	CreatedAt      time.Time           `json:"created_at"`
}

func AdaptAccountMergeDto(merge models.AccountMerge) APIAccountMerge {
	return APIAccountMerge{
		Id:             merge.Id,
		SourceUserId:   string(merge.SourceUserId),
		TargetUserId:   string(merge.TargetUserId),
		ExecutedBy:     string(merge.ExecutedBy),
		DeleteSource:   merge.DeleteSource,
		ReassignedRows: merge.ReassignedRows,
		CreatedAt:      merge.CreatedAt,
	}
}

type APIAccountMergePreview struct {
	SourceUser User           `json:"source_user"`
	TargetUser User           `json:"target_user"`
	RowCounts  map[string]int `json:"row_counts"`
	TotalRows  int            `json:"total_rows"`
}

func AdaptAccountMergePreviewDto(preview models.AccountMergePreview) APIAccountMergePreview {
	return APIAccountMergePreview{
		SourceUser: AdaptUserDto(preview.SourceUser),
		TargetUser: AdaptUserDto(preview.TargetUser),
		RowCounts:  preview.RowCounts,
		TotalRows:  preview.TotalRows(),
	}
}

type ExecuteAccountMergeBody struct {
	SourceUserId string `json:"source_user_id" binding:"required"`
	TargetUserId string `json:"target_user_id" binding:"required"`
	DeleteSource bool   `json:"delete_source"`
}

func AdaptExecuteAccountMergeBody(body ExecuteAccountMergeBody,
	executedBy models.UserId,
) models.ExecuteAccountMergeAttributes {
	return models.ExecuteAccountMergeAttributes{
		SourceUserId: models.UserId(body.SourceUserId),
		TargetUserId: models.UserId(body.TargetUserId),
		ExecutedBy:   executedBy,
		DeleteSource: body.DeleteSource,
	}
}
