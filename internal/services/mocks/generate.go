package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_repo.go -package=mocks github.com/bionicotaku/lingo-services-tube/internal/services VideoRepo
//go:generate go run github.com/golang/mock/mockgen -destination=mock_comment_repo.go -package=mocks github.com/bionicotaku/lingo-services-tube/internal/services CommentRepo
//go:generate go run github.com/golang/mock/mockgen -destination=mock_user_videos_repo.go -package=mocks github.com/bionicotaku/lingo-services-tube/internal/services UserVideosRepo
//go:generate go run github.com/golang/mock/mockgen -destination=mock_media_orphan_repo.go -package=mocks github.com/bionicotaku/lingo-services-tube/internal/services MediaOrphanRepo
//go:generate go run github.com/golang/mock/mockgen -destination=mock_outbox_enqueuer.go -package=mocks github.com/bionicotaku/lingo-services-tube/internal/services OutboxEnqueuer
//go:generate go run github.com/golang/mock/mockgen -destination=mock_media_store.go -package=mocks github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore Store
