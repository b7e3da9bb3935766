package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

// mockJobRepo keeps job documents in memory, mirroring the equality-filter
// semantics of the real repository.
type mockJobRepo struct {
	docs map[primitive.ObjectID]bson.M
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{docs: make(map[primitive.ObjectID]bson.M)}
}

func (m *mockJobRepo) seed(doc bson.M) primitive.ObjectID {
	id := primitive.NewObjectID()
	doc["_id"] = id
	m.docs[id] = doc
	return id
}

func (m *mockJobRepo) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	jobs := make([]bson.M, 0)
	for _, doc := range m.docs {
		if email, ok := filter["hr_email"]; ok && doc["hr_email"] != email {
			continue
		}
		jobs = append(jobs, doc)
	}
	return jobs, nil
}

func (m *mockJobRepo) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (m *mockJobRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Job, error) {
	jobs := make(map[primitive.ObjectID]models.Job, len(ids))
	for _, id := range ids {
		doc, ok := m.docs[id]
		if !ok {
			continue
		}
		jobs[id] = models.Job{
			ID:          id,
			HREmail:     asString(doc["hr_email"]),
			Title:       asString(doc["title"]),
			Company:     asString(doc["company"]),
			CompanyLogo: asString(doc["company_logo"]),
			Location:    asString(doc["location"]),
			Status:      asString(doc["status"]),
		}
	}
	return jobs, nil
}

func (m *mockJobRepo) Insert(ctx context.Context, job bson.M) (*models.InsertResult, error) {
	id := m.seed(job)
	return &models.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *mockJobRepo) IncrementApplicantCount(ctx context.Context, id primitive.ObjectID) error {
	doc, ok := m.docs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id.Hex(), repositories.ErrJobNotFound)
	}
	count, _ := doc["totalApplicant"].(int)
	doc["totalApplicant"] = count + 1
	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func newJobTestApp(repo repositories.JobRepository) *fiber.App {
	handler := NewJobHandler(repo)
	app := fiber.New()
	app.Get("/jobs", handler.HandleListJobs)
	app.Post("/jobs", handler.HandleCreateJob)
	app.Get("/jobs/:id", handler.HandleGetJob)
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	resp.Body.Close()
	return body
}

func TestListJobsFiltersByEmail(t *testing.T) {
	repo := newMockJobRepo()
	repo.seed(bson.M{"hr_email": "a@x.com", "title": "Engineer"})
	repo.seed(bson.M{"hr_email": "b@x.com", "title": "Designer"})
	app := newJobTestApp(repo)

	resp, err := app.Test(jsonRequest("GET", "/jobs?email=a@x.com", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var jobs []bson.M
	if err := json.Unmarshal(readBody(t, resp), &jobs); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("Expected 1 job, got %d", len(jobs))
	}
	if jobs[0]["title"] != "Engineer" {
		t.Errorf("Expected the a@x.com job, got %v", jobs[0])
	}
}

func TestListJobsNoMatchReturnsEmptyList(t *testing.T) {
	repo := newMockJobRepo()
	repo.seed(bson.M{"hr_email": "a@x.com", "title": "Engineer"})
	app := newJobTestApp(repo)

	resp, err := app.Test(jsonRequest("GET", "/jobs?email=nobody@x.com", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body := readBody(t, resp)
	if string(bytes.TrimSpace(body)) != "[]" {
		t.Errorf("Expected an empty list, got %s", body)
	}
}

func TestListJobsWithoutFilterReturnsAll(t *testing.T) {
	repo := newMockJobRepo()
	repo.seed(bson.M{"hr_email": "a@x.com", "title": "Engineer"})
	repo.seed(bson.M{"hr_email": "b@x.com", "title": "Designer"})
	app := newJobTestApp(repo)

	resp, err := app.Test(jsonRequest("GET", "/jobs", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	var jobs []bson.M
	if err := json.Unmarshal(readBody(t, resp), &jobs); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("Expected 2 jobs, got %d", len(jobs))
	}
}

func TestCreateAndFetchJobRoundTrip(t *testing.T) {
	repo := newMockJobRepo()
	app := newJobTestApp(repo)

	resp, err := app.Test(jsonRequest("POST", "/jobs", bson.M{
		"hr_email":    "a@x.com",
		"title":       "Engineer",
		"company":     "Acme",
		"extra_field": "kept as-is",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result models.InsertResult
	if err := json.Unmarshal(readBody(t, resp), &result); err != nil {
		t.Fatalf("Failed to unmarshal insert result: %v", err)
	}
	if !result.Acknowledged || result.InsertedID == "" {
		t.Fatalf("Expected an acknowledged insert with an id, got %+v", result)
	}

	resp, err = app.Test(jsonRequest("GET", "/jobs/"+result.InsertedID, nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	var job bson.M
	if err := json.Unmarshal(readBody(t, resp), &job); err != nil {
		t.Fatalf("Failed to unmarshal job: %v", err)
	}
	if job["title"] != "Engineer" || job["extra_field"] != "kept as-is" {
		t.Errorf("Fetched job does not match inserted document: %v", job)
	}
}

func TestGetJobMissingIDReturnsNull(t *testing.T) {
	repo := newMockJobRepo()
	app := newJobTestApp(repo)

	resp, err := app.Test(jsonRequest("GET", "/jobs/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 for a missing job, got %d", resp.StatusCode)
	}

	body := readBody(t, resp)
	if string(bytes.TrimSpace(body)) != "null" {
		t.Errorf("Expected a null body, got %s", body)
	}
}

func TestGetJobMalformedIDFails(t *testing.T) {
	repo := newMockJobRepo()
	app := newJobTestApp(repo)

	resp, err := app.Test(jsonRequest("GET", "/jobs/not-an-object-id", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500 for a malformed id, got %d", resp.StatusCode)
	}
}
