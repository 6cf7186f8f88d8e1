package attendance

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	attendanceerrors "github.com/adeka83-arch/systemklinik-sub011/internal/attendance/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/directory"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/contextutil"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

const unknownSubjectName = "Unknown"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	lookup directory.Lookup
	logger *zap.Logger
}

func NewService(repo Repository, lookup directory.Lookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, lookup: lookup, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create attendance requested",
		zap.String("request_id", rid),
		zap.String("subject_id", req.SubjectID),
		zap.String("event_type", req.EventType),
		zap.String("shift", req.Shift),
	)

	now := time.Now()
	candidate, err := s.buildCandidate(req, now)
	if err != nil {
		s.logger.Warn("create attendance validation failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	// Enrichment nama subject bersifat best-effort: kegagalan lookup
	// tidak boleh menghalangi penulisan record.
	if candidate.SubjectName == "" {
		candidate.SubjectName = s.resolveSubjectName(ctx, candidate.SubjectID)
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("create attendance list existing failed", zap.Error(err))
		return AttendanceResponse{}, storeFailure(err)
	}

	if conflict := validateCreate(candidate, existing); conflict != nil {
		return AttendanceResponse{}, s.conflictError(conflict, candidate)
	}

	candidate.ID = NewRecordID(now)
	candidate.CreatedAt = now.UTC()
	candidate.UpdatedAt = candidate.CreatedAt

	if err := s.repo.Save(ctx, &candidate); err != nil {
		s.logger.Error("create attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, storeFailure(err)
	}

	s.logger.Info("create attendance success",
		zap.String("request_id", rid),
		zap.String("attendance_id", candidate.ID),
		zap.String("subject_id", candidate.SubjectID),
		zap.String("event_type", candidate.EventType),
	)
	return mapToResponse(candidate), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}

	// Terbaru dulu; timestamp yang tidak bisa diparse (zero time)
	// otomatis jatuh ke urutan paling akhir.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].sortTimestamp().After(recs[j].sortTimestamp())
	})

	resp := make([]AttendanceResponse, len(recs))
	for i, r := range recs {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, storeFailure(err)
	}

	merged := *rec
	applyPatch(&merged, req)

	if merged.EventType != EventCheckIn && merged.EventType != EventCheckOut {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEventType
	}

	// Duplicate/ordering hanya dicek ulang kalau field kunci berubah;
	// update notes saja selalu lolos.
	keyChanged := merged.SubjectID != rec.SubjectID ||
		merged.Date != rec.Date ||
		merged.Shift != rec.Shift ||
		merged.EventType != rec.EventType
	if keyChanged {
		existing, err := s.repo.FindAll(ctx)
		if err != nil {
			return AttendanceResponse{}, storeFailure(err)
		}
		if conflict := validateUpdate(id, merged, existing); conflict != nil {
			return AttendanceResponse{}, s.conflictError(conflict, merged)
		}
	}

	merged.ID = rec.ID
	merged.CreatedAt = rec.CreatedAt
	merged.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, &merged); err != nil {
		s.logger.Error("update attendance persist failed",
			zap.String("attendance_id", id),
			zap.Error(err),
		)
		return AttendanceResponse{}, storeFailure(err)
	}

	s.logger.Info("update attendance success", zap.String("attendance_id", id))
	return mapToResponse(merged), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return attendanceerrors.ErrAttendanceNotFound
		}
		return storeFailure(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err)
	}

	s.logger.Info("delete attendance success", zap.String("attendance_id", id))
	return nil
}

func (s *service) buildCandidate(req CreateAttendanceRequest, now time.Time) (AttendanceRecord, error) {
	if req.EventType != EventCheckIn && req.EventType != EventCheckOut {
		return AttendanceRecord{}, attendanceerrors.ErrInvalidEventType
	}

	date := req.Date
	if date == "" {
		date = now.Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return AttendanceRecord{}, attendanceerrors.ErrInvalidDateFormat
	}

	clock := req.Time
	if clock == "" {
		clock = now.Format("15:04")
	} else if _, err := time.Parse("15:04", clock); err != nil {
		return AttendanceRecord{}, attendanceerrors.ErrInvalidTimeFormat
	}

	return AttendanceRecord{
		SubjectID:   req.SubjectID,
		SubjectName: req.SubjectName,
		Shift:       req.Shift,
		EventType:   req.EventType,
		Date:        date,
		Time:        clock,
		Notes:       req.Notes,
	}, nil
}

func (s *service) resolveSubjectName(ctx context.Context, subjectID string) string {
	name, err := s.lookup.ResolveName(ctx, subjectID)
	if err != nil {
		s.logger.Warn("subject name lookup failed, using fallback",
			zap.String("subject_id", subjectID),
			zap.Error(err),
		)
		return unknownSubjectName
	}
	return name
}

func (s *service) conflictError(conflict *Conflict, candidate AttendanceRecord) error {
	switch conflict.Reason {
	case conflictDuplicate:
		s.logger.Warn("attendance duplicate detected",
			zap.String("subject_id", candidate.SubjectID),
			zap.String("date", candidate.Date),
			zap.String("shift", candidate.Shift),
			zap.String("event_type", candidate.EventType),
		)
		details := ConflictDetails{Duplicate: true}
		if conflict.Existing != nil {
			existing := mapToResponse(*conflict.Existing)
			details.ExistingRecord = &existing
		}
		return attendanceerrors.ErrDuplicateAttendance.WithDetails(details)
	case conflictMissingCheckIn:
		return attendanceerrors.ErrMissingCheckIn
	default:
		return apperror.ErrInternal
	}
}

func applyPatch(rec *AttendanceRecord, req UpdateAttendanceRequest) {
	if req.SubjectID != nil {
		rec.SubjectID = *req.SubjectID
	}
	if req.SubjectName != nil {
		rec.SubjectName = *req.SubjectName
	}
	if req.Shift != nil {
		rec.Shift = *req.Shift
	}
	if req.EventType != nil {
		rec.EventType = *req.EventType
	}
	if req.Date != nil {
		rec.Date = *req.Date
	}
	if req.Time != nil {
		rec.Time = *req.Time
	}
	if req.Notes != nil {
		rec.Notes = *req.Notes
	}
}

func storeFailure(err error) error {
	// Pesan mentah diteruskan apa adanya: ini internal admin tool
	return apperror.Wrap(err, apperror.CodeInternalError, err.Error(), http.StatusInternalServerError)
}
