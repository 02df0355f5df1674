package gateway

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"poshan-board/internal/domain"
)

// Login authenticates against the remote auth service. The remote contract
// returns {user} on success and {error} with a non-2xx status on failure.
func (c *Client) Login(ctx context.Context, username, password, employeeID string) (*domain.User, error) {
	body := map[string]string{
		"username":    username,
		"password":    password,
		"employee_id": employeeID,
	}
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := c.post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("remote login returned no user")
	}
	return out.User, nil
}

// Users (admin management; delete is a soft-deactivation upstream)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/auth/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.post(ctx, "/auth/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	return c.put(ctx, "/auth/users/"+id, fields, nil)
}

func (c *Client) DeactivateUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/auth/users/"+id)
}

// Patients

func (c *Client) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := c.get(ctx, "/patients", &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *Client) CreatePatient(ctx context.Context, patient domain.Patient) (*domain.Patient, error) {
	var created domain.Patient
	if err := c.post(ctx, "/patients", patient, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id string, fields map[string]any) error {
	return c.put(ctx, "/patients/"+id, fields, nil)
}

// Beds. Ward strings are validated against the ward-category enum at load
// time; unknown wards pass through but are logged so bad master data shows
// up before an allocation silently finds no match.
func (c *Client) ListBeds(ctx context.Context) ([]domain.Bed, error) {
	var beds []domain.Bed
	if err := c.get(ctx, "/beds", &beds); err != nil {
		return nil, err
	}
	for _, bed := range beds {
		if _, ok := bed.WardCategory(); !ok {
			c.logger.Warn("Bed has unrecognized ward",
				zap.String("bed_id", bed.ID),
				zap.String("ward", bed.Ward),
			)
		}
	}
	return beds, nil
}

func (c *Client) UpdateBed(ctx context.Context, id string, fields map[string]any) error {
	return c.put(ctx, "/beds/"+id, fields, nil)
}

// Bed requests

func (c *Client) ListBedRequests(ctx context.Context) ([]domain.BedRequest, error) {
	var requests []domain.BedRequest
	if err := c.get(ctx, "/bed-requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) CreateBedRequest(ctx context.Context, request domain.BedRequest) (*domain.BedRequest, error) {
	var created domain.BedRequest
	if err := c.post(ctx, "/bed-requests", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBedRequest(ctx context.Context, id string, fields map[string]any) error {
	return c.put(ctx, "/bed-requests/"+id, fields, nil)
}

// Notifications

func (c *Client) NotificationsForRole(ctx context.Context, role domain.Role) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := c.get(ctx, "/notifications/role/"+string(role), &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) CreateNotification(ctx context.Context, n domain.Notification) error {
	return c.post(ctx, "/notifications", n, nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.put(ctx, "/notifications/"+id+"/read", nil, nil)
}

// Anganwadi centers

func (c *Client) ListCenters(ctx context.Context) ([]domain.AnganwadiCenter, error) {
	var centers []domain.AnganwadiCenter
	if err := c.get(ctx, "/anganwadi-centers", &centers); err != nil {
		return nil, err
	}
	return centers, nil
}

func (c *Client) CreateCenter(ctx context.Context, center domain.AnganwadiCenter) (*domain.AnganwadiCenter, error) {
	var created domain.AnganwadiCenter
	if err := c.post(ctx, "/anganwadi-centers", center, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCenter(ctx context.Context, id string, fields map[string]any) error {
	return c.put(ctx, "/anganwadi-centers/"+id, fields, nil)
}

// Workers

func (c *Client) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	var workers []domain.Worker
	if err := c.get(ctx, "/workers", &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

func (c *Client) CreateWorker(ctx context.Context, worker domain.Worker) (*domain.Worker, error) {
	var created domain.Worker
	if err := c.post(ctx, "/workers", worker, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateWorker(ctx context.Context, id string, fields map[string]any) error {
	return c.put(ctx, "/workers/"+id, fields, nil)
}

// Surveys

func (c *Client) ListSurveys(ctx context.Context) ([]domain.Survey, error) {
	var surveys []domain.Survey
	if err := c.get(ctx, "/surveys", &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (c *Client) CreateSurvey(ctx context.Context, survey domain.Survey) (*domain.Survey, error) {
	var created domain.Survey
	if err := c.post(ctx, "/surveys", survey, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Treatment trackers

func (c *Client) ListTreatmentTrackers(ctx context.Context) ([]domain.TreatmentTracker, error) {
	var trackers []domain.TreatmentTracker
	if err := c.get(ctx, "/treatment-trackers", &trackers); err != nil {
		return nil, err
	}
	return trackers, nil
}

func (c *Client) CreateTreatmentTracker(ctx context.Context, tracker domain.TreatmentTracker) (*domain.TreatmentTracker, error) {
	var created domain.TreatmentTracker
	if err := c.post(ctx, "/treatment-trackers", tracker, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTreatmentTracker(ctx context.Context, id string, fields map[string]any) error {
	return c.put(ctx, "/treatment-trackers/"+id, fields, nil)
}
