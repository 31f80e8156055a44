package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/policy"
	"github.com/sbilibin2017/gw-blog/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=blogs.go -destination=blogs_mock.go -package=services

// BlogReader defines read-only operations for blogs.
type BlogReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BlogDB, error)           // Returns nil when the blog does not exist
	List(ctx context.Context, filter models.BlogFilter) ([]models.BlogDB, error) // Lists blogs matching filter
}

// BlogWriter defines write operations for blogs.
type BlogWriter interface {
	Save(ctx context.Context, blog *models.BlogDB) error
	Update(ctx context.Context, blog *models.BlogDB) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlogCache caches blogs by id.
type BlogCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.BlogDB, error) // Returns nil on a cache miss
	Set(ctx context.Context, blog *models.BlogDB) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BlogService implements blog CRUD on behalf of an authenticated actor.
// cache and kafkaWriter are optional.
type BlogService struct {
	reader      BlogReader
	writer      BlogWriter
	cache       BlogCache
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewBlogService creates a new BlogService.
func NewBlogService(reader BlogReader, writer BlogWriter, cache BlogCache, kafkaWriter KafkaWriter) *BlogService {
	return &BlogService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// ListAll returns every blog.
func (s *BlogService) ListAll(ctx context.Context, actor *models.UserDB) ([]models.BlogDB, error) {
	if err := authorize(actor, policy.ListAllBlogs, uuid.Nil); err != nil {
		return nil, err
	}
	return s.list(ctx, models.BlogFilter{})
}

// ListOwn returns the actor's blogs.
func (s *BlogService) ListOwn(ctx context.Context, actor *models.UserDB) ([]models.BlogDB, error) {
	if err := authorize(actor, policy.ListOwnBlogs, actor.ID); err != nil {
		return nil, err
	}
	return s.list(ctx, models.BlogFilter{OwnerID: &actor.ID})
}

// Get returns any blog by id, served from the cache when possible.
func (s *BlogService) Get(ctx context.Context, actor *models.UserDB, id uuid.UUID) (*models.BlogDB, error) {
	if err := authorize(actor, policy.ReadAnyBlog, uuid.Nil); err != nil {
		return nil, err
	}

	if s.cache != nil {
		blog, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("blog cache read failed", "blog_id", id, "error", err)
		}
		if blog != nil {
			return blog, nil
		}
	}

	blog, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, blog); err != nil {
			logger.Log.Warnw("blog cache write failed", "blog_id", id, "error", err)
		}
	}

	return blog, nil
}

// Create stores a new blog owned by the actor.
func (s *BlogService) Create(ctx context.Context, actor *models.UserDB, title, body string) (*models.BlogDB, error) {
	if err := authorize(actor, policy.CreateBlog, actor.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	blog := &models.BlogDB{
		ID:     uuid.New(),
		Title:  title,
		Body:   body,
		UserID: actor.ID,
	}
	if err := s.writer.Save(ctx, blog); err != nil {
		logger.Log.Errorw("failed to save blog", "user_id", actor.ID, "error", err)
		return nil, err
	}

	repositories.AfterCommit(ctx, func() {
		s.publishEvent(ctx, models.BlogCreated, blog, actor)
	})
	return blog, nil
}

// Update changes title and body of a blog. Only its owner, admins and moderators may do so.
func (s *BlogService) Update(ctx context.Context, actor *models.UserDB, id uuid.UUID, title, body string) (*models.BlogDB, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	blog, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, policy.UpdateBlog, blog.UserID); err != nil {
		return nil, err
	}

	blog.Title = title
	blog.Body = body
	err = s.writer.Update(ctx, blog)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update blog", "blog_id", id, "error", err)
		return nil, err
	}

	// the cache entry may only be dropped once the new row is visible
	repositories.AfterCommit(ctx, func() {
		s.evict(ctx, id)
		s.publishEvent(ctx, models.BlogUpdated, blog, actor)
	})
	return blog, nil
}

// Delete removes a blog. Only its owner, admins and moderators may do so.
func (s *BlogService) Delete(ctx context.Context, actor *models.UserDB, id uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	blog, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actor, policy.DeleteBlog, blog.UserID); err != nil {
		return err
	}

	err = s.writer.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrBlogNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete blog", "blog_id", id, "error", err)
		return err
	}

	repositories.AfterCommit(ctx, func() {
		s.evict(ctx, id)
		s.publishEvent(ctx, models.BlogDeleted, blog, actor)
	})
	return nil
}

func (s *BlogService) list(ctx context.Context, filter models.BlogFilter) ([]models.BlogDB, error) {
	blogs, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list blogs", "error", err)
		return nil, err
	}
	return blogs, nil
}

func (s *BlogService) load(ctx context.Context, id uuid.UUID) (*models.BlogDB, error) {
	blog, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get blog", "blog_id", id, "error", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

func (s *BlogService) evict(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("blog cache eviction failed", "blog_id", id, "error", err)
	}
}

// publishEvent publishes a blog change to Kafka. Failures are logged only.
func (s *BlogService) publishEvent(ctx context.Context, eventType string, blog *models.BlogDB, actor *models.UserDB) {
	event := models.BlogEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		BlogID:    blog.ID.String(),
		OwnerID:   blog.UserID.String(),
		ActorID:   actor.ID.String(),
		Timestamp: s.now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal blog event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BlogID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish blog event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Blog event published to Kafka", "event_id", event.EventID, "type", eventType, "blog_id", event.BlogID)
	}
}
