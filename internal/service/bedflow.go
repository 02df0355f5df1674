package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"poshan-board/internal/alerts"
	"poshan-board/internal/domain"
)

// Business-rule failures of the allocation workflow. Handlers surface these
// as blocking messages; the reviewer then declines or refers instead.
var (
	ErrRequestNotFound = errors.New("bed request not found")
	ErrNotPending      = errors.New("bed request is not pending")
	ErrPatientNotFound = errors.New("patient not found")
)

// NoCapacityError raised when no available bed matches the required ward.
type NoCapacityError struct {
	Ward domain.WardCategory
}

func (e *NoCapacityError) Error() string {
	return fmt.Sprintf("no available bed in %s ward; decline the request or refer to a hospital", e.Ward)
}

// ApproveResult reports what the approval changed.
type ApproveResult struct {
	Request domain.BedRequest `json:"request"`
	Bed     domain.Bed        `json:"bed"`
}

// ApproveBedRequest runs the allocation workflow for a pending request:
// resolve the patient's required ward, take the first available bed of that
// ward in list order, mark the request approved and the bed occupied.
//
// The two writes have no transactional wrapping upstream. If the bed write
// fails after the request write succeeded, a compensating update puts the
// request back to pending; if that also fails the inconsistency is logged
// and reported.
func (c *Controller) ApproveBedRequest(ctx context.Context, requestID, reviewer string) (*ApproveResult, error) {
	request, err := c.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RequestPending {
		return nil, ErrNotPending
	}

	patient, err := c.findPatient(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}

	requiredWard, err := domain.RequiredWard(patient.Category)
	if err != nil {
		return nil, err
	}

	beds, err := c.remote.ListBeds(ctx)
	if err != nil {
		return nil, err
	}

	// First matching bed in list order. No tie-break by urgency or request
	// age: allocation is stable, not priority-based.
	var bed *domain.Bed
	for i := range beds {
		if beds[i].Status == domain.BedAvailable && beds[i].Ward == string(requiredWard) {
			bed = &beds[i]
			break
		}
	}
	if bed == nil {
		c.logger.Info("Bed request approval blocked: no capacity",
			zap.String("request_id", requestID),
			zap.String("ward", string(requiredWard)),
		)
		return nil, &NoCapacityError{Ward: requiredWard}
	}

	reviewDate := c.today()
	comment := fmt.Sprintf("Approved - allocated bed %s (%s ward)", bed.Number, requiredWard)

	if err := c.remote.UpdateBedRequest(ctx, requestID, map[string]any{
		"status":         domain.RequestApproved,
		"reviewedBy":     reviewer,
		"reviewDate":     reviewDate,
		"reviewComments": comment,
	}); err != nil {
		return nil, err
	}

	if err := c.remote.UpdateBed(ctx, bed.ID, map[string]any{
		"status":        domain.BedOccupied,
		"patientId":     patient.ID,
		"admissionDate": reviewDate,
	}); err != nil {
		// Compensate: put the request back to pending so the approval can
		// be retried once the bed write works again.
		compErr := c.remote.UpdateBedRequest(ctx, requestID, map[string]any{
			"status":         domain.RequestPending,
			"reviewedBy":     nil,
			"reviewDate":     nil,
			"reviewComments": nil,
		})
		if compErr != nil {
			c.logger.Error("Approval left inconsistent state: request approved but bed write and compensation both failed",
				zap.String("request_id", requestID),
				zap.String("bed_id", bed.ID),
				zap.Error(err),
				zap.NamedError("compensation_error", compErr),
			)
			return nil, fmt.Errorf("bed update failed: %w (compensation also failed: %v)", err, compErr)
		}
		c.logger.Warn("Bed update failed, request reverted to pending",
			zap.String("request_id", requestID),
			zap.String("bed_id", bed.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("bed update failed, request reverted to pending: %w", err)
	}

	c.logger.Info("Bed request approved",
		zap.String("request_id", requestID),
		zap.String("patient_id", patient.ID),
		zap.String("bed_id", bed.ID),
		zap.String("ward", string(requiredWard)),
		zap.String("reviewed_by", reviewer),
	)

	c.notifyRole(ctx, domain.RoleWorker, "Bed request approved",
		fmt.Sprintf("Request for patient %s approved; bed %s allocated", patient.Name, bed.Number),
		"bed_request", requestID)
	c.notifyRole(ctx, domain.RoleHospital, "New admission",
		fmt.Sprintf("Patient %s admitted to bed %s (%s ward)", patient.Name, bed.Number, requiredWard),
		"bed_request", requestID)

	request.Status = domain.RequestApproved
	request.ReviewedBy = reviewer
	request.ReviewDate = reviewDate
	request.ReviewComments = comment
	bed.Status = domain.BedOccupied
	bed.PatientID = patient.ID
	bed.AdmissionDate = reviewDate

	return &ApproveResult{Request: *request, Bed: *bed}, nil
}

// DeclineBedRequest terminally declines a pending request, optionally
// attaching a hospital referral when the reviewer escalates instead.
func (c *Controller) DeclineBedRequest(ctx context.Context, requestID, reviewer, comment string, referral *domain.HospitalReferral) error {
	request, err := c.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.RequestPending {
		return ErrNotPending
	}

	fields := map[string]any{
		"status":         domain.RequestDeclined,
		"reviewedBy":     reviewer,
		"reviewDate":     c.today(),
		"reviewComments": comment,
	}
	if referral != nil {
		if referral.ReferralDate == "" {
			referral.ReferralDate = c.today()
		}
		fields["referral"] = referral
	}

	if err := c.remote.UpdateBedRequest(ctx, requestID, fields); err != nil {
		return err
	}

	c.logger.Info("Bed request declined",
		zap.String("request_id", requestID),
		zap.String("reviewed_by", reviewer),
		zap.Bool("referred", referral != nil),
	)

	message := fmt.Sprintf("Request %s declined: %s", requestID, comment)
	if referral != nil {
		message = fmt.Sprintf("Request %s referred to %s: %s", requestID, referral.HospitalName, referral.Reason)
		c.publishAlert(alerts.Alert{
			Kind:      "referral",
			EntityID:  requestID,
			PatientID: request.PatientID,
			Urgency:   referral.Urgency,
			Message:   message,
		})
	}
	c.notifyRole(ctx, domain.RoleWorker, "Bed request declined", message, "bed_request", requestID)

	return nil
}

// CancelBedRequest terminally cancels a pending request (worker action).
func (c *Controller) CancelBedRequest(ctx context.Context, requestID string) error {
	request, err := c.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.RequestPending {
		return ErrNotPending
	}

	if err := c.remote.UpdateBedRequest(ctx, requestID, map[string]any{
		"status": domain.RequestCancelled,
	}); err != nil {
		return err
	}

	c.logger.Info("Bed request cancelled", zap.String("request_id", requestID))
	return nil
}

// CreateBedRequest raises a new pending request and notifies supervisors.
func (c *Controller) CreateBedRequest(ctx context.Context, request domain.BedRequest) (*domain.BedRequest, error) {
	request.Status = domain.RequestPending
	if request.RequestDate == "" {
		request.RequestDate = c.today()
	}

	created, err := c.remote.CreateBedRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Bed request created",
		zap.String("request_id", created.ID),
		zap.String("patient_id", created.PatientID),
		zap.String("urgency", created.Urgency),
	)

	c.notifyRole(ctx, domain.RoleSupervisor, "New bed request",
		fmt.Sprintf("Bed request raised for patient %s (urgency: %s)", created.PatientID, created.Urgency),
		"bed_request", created.ID)

	if created.Urgency == domain.UrgencyCritical {
		c.publishAlert(alerts.Alert{
			Kind:      "bed_request",
			EntityID:  created.ID,
			PatientID: created.PatientID,
			Urgency:   created.Urgency,
			Message:   "Critical bed request awaiting review",
		})
	}

	return created, nil
}

// DischargeBed frees an occupied bed. Unconditional: no check that the
// patient's treatment is complete.
func (c *Controller) DischargeBed(ctx context.Context, bedID string) error {
	if err := c.remote.UpdateBed(ctx, bedID, map[string]any{
		"status":        domain.BedAvailable,
		"patientId":     nil,
		"admissionDate": nil,
	}); err != nil {
		return err
	}
	c.logger.Info("Bed discharged", zap.String("bed_id", bedID))
	return nil
}

// SetBedMaintenance toggles a bed between available and maintenance. The
// occupied state is not structurally guarded against.
func (c *Controller) SetBedMaintenance(ctx context.Context, bedID string, underMaintenance bool) error {
	status := domain.BedAvailable
	if underMaintenance {
		status = domain.BedMaintenance
	}
	if err := c.remote.UpdateBed(ctx, bedID, map[string]any{"status": status}); err != nil {
		return err
	}
	c.logger.Info("Bed maintenance toggled",
		zap.String("bed_id", bedID),
		zap.String("status", status),
	)
	return nil
}

func (c *Controller) findRequest(ctx context.Context, requestID string) (*domain.BedRequest, error) {
	requests, err := c.remote.ListBedRequests(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == requestID {
			return &requests[i], nil
		}
	}
	return nil, ErrRequestNotFound
}

func (c *Controller) findPatient(ctx context.Context, patientID string) (*domain.Patient, error) {
	patients, err := c.remote.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == patientID {
			return &patients[i], nil
		}
	}
	return nil, ErrPatientNotFound
}
