package mappers

import (
	"mantis/internal/domain/report"
	"mantis/internal/infrastructure/persistence/models"
)

// ReportMapper handles the conversion between Report domain entities and persistence models.
type ReportMapper interface {
	ToModel(r *report.Report) *models.ReportModel
	ToDomain(model *models.ReportModel) (*report.Report, error)
}

type ReportMapperImpl struct{}

func NewReportMapper() ReportMapper {
	return &ReportMapperImpl{}
}

func (m *ReportMapperImpl) ToModel(r *report.Report) *models.ReportModel {
	return &models.ReportModel{
		ID:             r.ID(),
		Description:    r.Description(),
		BeforePhotoURL: r.BeforePhotoURL(),
		AfterPhotoURL:  r.AfterPhotoURL(),
		Version:        r.Version(),
		CreatedAt:      r.CreatedAt().UnixMilli(),
		UpdatedAt:      r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReportMapperImpl) ToDomain(model *models.ReportModel) (*report.Report, error) {
	return report.ReconstructReport(
		model.ID,
		model.Description,
		model.BeforePhotoURL,
		model.AfterPhotoURL,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
