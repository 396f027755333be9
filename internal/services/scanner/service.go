package scanner

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"techsnap/internal/domain"
	"techsnap/internal/metrics"
	"techsnap/internal/ports"
)

// Service accepts scan requests. It performs no retries; callers own that policy.
type Service struct {
	queue   ports.QueueRepository
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func New(queue ports.QueueRepository, log logrus.FieldLogger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{queue: queue, log: log, metrics: m}
}

// Enqueue queues name for analysis. A request that is already pending for the
// same domain is not an error: either way a scan will eventually run.
func (s *Service) Enqueue(ctx context.Context, name string) error {
	d := Normalize(name)
	if d == "" {
		s.metrics.Enqueued("invalid")
		return &domain.ValidationError{Field: "domain", Msg: "required"}
	}
	inserted, err := s.queue.EnqueueIfAbsent(ctx, d)
	if err != nil {
		s.metrics.Enqueued("error")
		s.log.WithError(err).WithField("domain", d).Error("enqueue failed")
		return domain.NewStorageError("enqueue", err)
	}
	if inserted {
		s.metrics.Enqueued("queued")
	} else {
		s.metrics.Enqueued("pending")
	}
	s.log.WithFields(logrus.Fields{"domain": d, "inserted": inserted}).Debug("scan queued")
	return nil
}

// Normalize trims surrounding whitespace and folds case.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
