package mappers

import (
	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/tubedb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BuildInsertMediaOrphanParams 构造孤儿登记参数。
func BuildInsertMediaOrphanParams(orphanID uuid.UUID, locator string, videoID *uuid.UUID, reason po.OrphanReason, lastErr *string) tubedb.InsertMediaOrphanParams {
	return tubedb.InsertMediaOrphanParams{
		OrphanID:  orphanID,
		Locator:   locator,
		VideoID:   ToPgUUID(videoID),
		Reason:    string(reason),
		LastError: ToPgText(lastErr),
	}
}

// MediaOrphanFromRow 将 TubeMediaOrphan 转换为 po.MediaOrphan。
func MediaOrphanFromRow(row tubedb.TubeMediaOrphan) *po.MediaOrphan {
	return &po.MediaOrphan{
		OrphanID:    row.OrphanID,
		Locator:     row.Locator,
		VideoID:     uuidPtr(row.VideoID),
		Reason:      po.OrphanReason(row.Reason),
		Attempts:    row.Attempts,
		LastError:   textPtr(row.LastError),
		AvailableAt: mustTimestamp(row.AvailableAt),
		ResolvedAt:  timestampPtr(row.ResolvedAt),
		CreatedAt:   mustTimestamp(row.CreatedAt),
	}
}

func uuidPtr(value pgtype.UUID) *uuid.UUID {
	if !value.Valid {
		return nil
	}
	id := uuid.UUID(value.Bytes)
	return &id
}
