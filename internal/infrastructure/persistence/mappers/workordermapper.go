package mappers

import (
	"encoding/json"
	"fmt"

	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/infrastructure/persistence/models"
)

// WorkOrderMapper handles the conversion between WorkOrder domain entities and persistence models.
type WorkOrderMapper interface {
	ToModel(w *workorder.WorkOrder) *models.WorkOrderModel
	ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error)
}

type WorkOrderMapperImpl struct{}

func NewWorkOrderMapper() WorkOrderMapper {
	return &WorkOrderMapperImpl{}
}

func (m *WorkOrderMapperImpl) ToModel(w *workorder.WorkOrder) *models.WorkOrderModel {
	model := &models.WorkOrderModel{
		ID:                w.ID(),
		TicketID:          w.TicketID(),
		Kind:              w.Kind().String(),
		Status:            w.Status().String(),
		RequireSpareParts: w.RequireSpareParts(),
		ReportID:          w.ReportID(),
		RejectReportID:    w.RejectReportID(),
		Note:              w.Note(),
		Version:           w.Version(),
		CreatedAt:         w.CreatedAt().UnixMilli(),
		UpdatedAt:         w.UpdatedAt().UnixMilli(),
	}

	if ids := w.SparePartIDs(); len(ids) > 0 {
		idsJSON, _ := json.Marshal(ids)
		model.SparePartIDs = string(idsJSON)
	}

	if croca := w.Croca(); croca != nil {
		crocaType := croca.Type().String()
		cost := croca.Cost()
		model.CrocaType = &crocaType
		model.CrocaCost = &cost
		model.CrocaPhotoURL = croca.PhotoURL()
	}

	return model
}

func (m *WorkOrderMapperImpl) ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error) {
	kind, err := vo.NewKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("work order %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("work order %d: %w", model.ID, err)
	}

	var sparePartIDs []uint
	if model.SparePartIDs != "" {
		if err := json.Unmarshal([]byte(model.SparePartIDs), &sparePartIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spare part IDs (work order %d): %w", model.ID, err)
		}
	}

	var croca *vo.Croca
	if model.CrocaType != nil && model.CrocaCost != nil {
		crocaType, err := vo.NewCrocaType(*model.CrocaType)
		if err != nil {
			return nil, fmt.Errorf("work order %d: %w", model.ID, err)
		}
		c, err := vo.NewCroca(crocaType, *model.CrocaCost, model.CrocaPhotoURL)
		if err != nil {
			return nil, fmt.Errorf("work order %d: %w", model.ID, err)
		}
		croca = &c
	}

	return workorder.ReconstructWorkOrder(
		model.ID,
		model.TicketID,
		kind,
		status,
		model.RequireSpareParts,
		sparePartIDs,
		model.ReportID,
		model.RejectReportID,
		model.Note,
		croca,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
