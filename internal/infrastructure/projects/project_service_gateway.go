package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scopeworks/internal/usecase/interfaces"
)

var ErrMissingProjectServiceURL = errors.New("missing PROJECT_SERVICE_URL")
var ErrProjectServiceUnavailable = errors.New("project service returned an error")

// ProjectServiceGateway talks to the external project-creation service over
// HTTP. In mock mode it never leaves the process: approvals get a generated
// project id and no line item is ever reported as referenced, which is the
// right behavior for local development against DynamoDB Local.

type ProjectServiceGateway struct {
	baseURL  string
	client   *http.Client
	logger   *zap.Logger
	mockMode bool
}

var _ interfaces.IProjectGateway = (*ProjectServiceGateway)(nil)
var _ interfaces.IArtifactRefChecker = (*ProjectServiceGateway)(nil)

func NewProjectServiceGateway(baseURL string, mockMode bool, logger *zap.Logger) (*ProjectServiceGateway, error) {
	if mockMode {
		logger.Info("project gateway mock mode enabled")
		return &ProjectServiceGateway{logger: logger, mockMode: true}, nil
	}

	if baseURL == "" {
		logger.Error("project gateway missing PROJECT_SERVICE_URL")
		return nil, ErrMissingProjectServiceURL
	}

	return &ProjectServiceGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}, nil
}

type createProjectResponse struct {
	ID string `json:"id"`
}

func (g *ProjectServiceGateway) CreateProject(ctx context.Context, snap interfaces.ProjectSnapshot) (string, error) {
	if g.mockMode {
		id := uuid.NewString()
		g.logger.Info("mock project created",
			zap.String("project_id", id),
			zap.String("estimate_id", snap.EstimateID),
			zap.Int("line_items", len(snap.LineItems)))
		return id, nil
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/projects", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("project create request failed", zap.Error(err), zap.String("estimate_id", snap.EstimateID))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Error("project create rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("estimate_id", snap.EstimateID))
		return "", fmt.Errorf("%w: status %d", ErrProjectServiceUnavailable, resp.StatusCode)
	}

	var out createProjectResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("%w: empty project id", ErrProjectServiceUnavailable)
	}

	g.logger.Info("project created",
		zap.String("project_id", out.ID),
		zap.String("estimate_id", snap.EstimateID))
	return out.ID, nil
}

type referenceCheckResponse struct {
	Referenced bool `json:"referenced"`
}

// LineItemReferenced asks whether any downstream artifact (invoice, project
// task) still points at the line item. Deletion is blocked while it does.
func (g *ProjectServiceGateway) LineItemReferenced(ctx context.Context, estimateID, lineItemID string) (bool, error) {
	if g.mockMode {
		return false, nil
	}

	endpoint := fmt.Sprintf("%s/v1/estimates/%s/line-items/%s/references",
		g.baseURL, url.PathEscape(estimateID), url.PathEscape(lineItemID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("reference check request failed", zap.Error(err), zap.String("line_item_id", lineItemID))
		return false, err
	}
	defer resp.Body.Close()

	// An artifact registry that has never heard of the item cannot be
	// referencing it.
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: status %d", ErrProjectServiceUnavailable, resp.StatusCode)
	}

	var out referenceCheckResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return false, err
	}
	return out.Referenced, nil
}
