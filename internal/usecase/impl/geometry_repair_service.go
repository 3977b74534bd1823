package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"safemap/internal/domain/entity"
	"safemap/internal/domain/repository"
	"safemap/internal/errors"
	"safemap/internal/geo"
	"safemap/internal/usecase"
)

const repairPageSize = 500

const submissionTarget = "submission"

type geometryRepairService struct {
	publishedRepo  repository.PublishedEntityRepository
	submissionRepo repository.SubmissionRepository
	pageSize       int
	logger         *slog.Logger
}

// GeometryRepairServiceParams holds dependencies for GeometryRepairService, injected by Fx.
type GeometryRepairServiceParams struct {
	fx.In

	PublishedRepo  repository.PublishedEntityRepository
	SubmissionRepo repository.SubmissionRepository
	Logger         *slog.Logger
}

// NewGeometryRepairService creates the offline axis-order repair service
func NewGeometryRepairService(params GeometryRepairServiceParams) usecase.GeometryRepairUsecase {
	return &geometryRepairService{
		publishedRepo:  params.PublishedRepo,
		submissionRepo: params.SubmissionRepo,
		pageSize:       repairPageSize,
		logger:         params.Logger,
	}
}

// Repair walks pins, zones and submissions in ID order.
func (srv *geometryRepairService) Repair(ctx context.Context, apply bool) (*usecase.GeometryRepairReport, error) {
	report := &usecase.GeometryRepairReport{Applied: apply}

	for _, kind := range []entity.FeatureKind{entity.FeatureKindPin, entity.FeatureKindZone} {
		if err := srv.repairPublished(ctx, kind, apply, report); err != nil {
			return report, err
		}
	}

	if err := srv.repairSubmissions(ctx, apply, report); err != nil {
		return report, err
	}

	srv.logger.Info("Geometry repair finished",
		slog.Bool("applied", apply),
		slog.Int("scanned", report.Scanned),
		slog.Int("corrections", len(report.Corrections)),
		slog.Int("unrepairable", len(report.Unrepairable)),
	)

	return report, nil
}

func (srv *geometryRepairService) repairPublished(ctx context.Context, kind entity.FeatureKind, apply bool, report *usecase.GeometryRepairReport) error {
	var afterID int64
	for {
		rows, err := srv.publishedRepo.FindGeometryRows(ctx, kind, afterID, srv.pageSize)
		if err != nil {
			return errors.Wrapf(err, "scan %s geometry", kind)
		}

		for _, row := range rows {
			afterID = row.ID
			correction := srv.inspect(string(kind), row.ID, row.Geometry, report)
			if correction == nil || !apply {
				continue
			}
			if err := srv.publishedRepo.UpdateGeometry(ctx, kind, row.ID, correction.After); err != nil {
				return errors.Wrapf(err, "update %s %d", kind, row.ID)
			}
			srv.logCorrection("Geometry corrected", correction)
		}

		if len(rows) < srv.pageSize {
			return nil
		}
	}
}

func (srv *geometryRepairService) repairSubmissions(ctx context.Context, apply bool, report *usecase.GeometryRepairReport) error {
	var afterID int64
	for {
		subs, err := srv.submissionRepo.FindGeometryRows(ctx, afterID, srv.pageSize)
		if err != nil {
			return errors.Wrap(err, "scan submission geometry")
		}

		for _, sub := range subs {
			afterID = sub.ID
			correction := srv.inspect(submissionTarget, sub.ID, sub.Geometry, report)
			if correction == nil || !apply {
				continue
			}
			if err := srv.submissionRepo.UpdateSubmissionGeometry(ctx, sub.ID, correction.After); err != nil {
				return errors.Wrapf(err, "update submission %d", sub.ID)
			}
			srv.logCorrection("Geometry corrected", correction)
		}

		if len(subs) < srv.pageSize {
			return nil
		}
	}
}

// inspect records the row in the report and returns the correction, if any.
func (srv *geometryRepairService) inspect(target string, id int64, text string, report *usecase.GeometryRepairReport) *usecase.GeometryCorrection {
	report.Scanned++

	repair, err := geo.RepairText(text)
	if err != nil {
		report.Unrepairable = append(report.Unrepairable, usecase.GeometryFailure{Target: target, ID: id, Reason: err.Error()})
		srv.logger.Warn("Geometry cannot be repaired",
			slog.String("target", target),
			slog.Int64("id", id),
			slog.Any("error", err),
		)

		return nil
	}
	if repair == nil {
		return nil
	}

	correction := usecase.GeometryCorrection{
		Target:  target,
		ID:      id,
		Before:  repair.Before,
		After:   repair.After,
		Swapped: repair.Swapped,
	}
	report.Corrections = append(report.Corrections, correction)

	if !report.Applied {
		srv.logCorrection("Geometry repairable", &correction)
	}

	return &correction
}

func (srv *geometryRepairService) logCorrection(msg string, c *usecase.GeometryCorrection) {
	srv.logger.Info(msg,
		slog.String("target", c.Target),
		slog.Int64("id", c.ID),
		slog.String("before", c.Before),
		slog.String("after", c.After),
		slog.Int("swapped", c.Swapped),
	)
}
