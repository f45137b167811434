package list_tags_usecase

import (
	"context"
	"time"

	"fursan/domain"
	"fursan/port/tag_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// ListTagsUsecase returns the tag vocabulary with per-tag article counts.
type ListTagsUsecase struct {
	tagPort      tag_port.TagVocabularyPort
	queryTimeout time.Duration
}

// NewListTagsUsecase creates a new usecase instance.
func NewListTagsUsecase(tagPort tag_port.TagVocabularyPort, queryTimeout time.Duration) *ListTagsUsecase {
	return &ListTagsUsecase{
		tagPort:      tagPort,
		queryTimeout: queryTimeout,
	}
}

// Execute lists every tag in use, ordered by article count descending.
func (u *ListTagsUsecase) Execute(ctx context.Context) ([]domain.TagCount, error) {
	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	tags, err := u.tagPort.FetchTagCounts(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch tag counts", "error", err)
		return nil, errors.DatabaseError("failed to list tags", err, nil)
	}

	if tags == nil {
		tags = []domain.TagCount{}
	}

	logger.SafeInfoContext(ctx, "tag vocabulary fetched", "count", len(tags))
	return tags, nil
}
