package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

type ApplicationHandler struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationHandler(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// HandleSubmitApplication is the POST /job-applications endpoint. The
// application is stored as submitted, then the referenced job's applicant
// counter is bumped. The insert happens first, so a dangling job_id leaves
// the application persisted and fails the request afterwards.
func (h *ApplicationHandler) HandleSubmitApplication(c *fiber.Ctx) error {
	var ref models.Application
	if err := c.BodyParser(&ref); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	id, err := primitive.ObjectIDFromHex(ref.JobID)
	if err != nil {
		return fmt.Errorf("parse job_id: %w", err)
	}

	// Store the raw document, not the typed view, so applicant-supplied
	// fields survive untouched.
	var application bson.M
	if err := c.BodyParser(&application); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	result, err := h.applicationRepo.Insert(c.Context(), application)
	if err != nil {
		return fmt.Errorf("submit application: %w", err)
	}

	if err := h.jobRepo.IncrementApplicantCount(c.Context(), id); err != nil {
		return fmt.Errorf("submit application: %w", err)
	}

	return c.JSON(result)
}

// HandleListMyApplications is the GET /job-application endpoint, behind
// RequireSession. The session identity must own the requested email. Each
// application is enriched with the display fields of its job as they are
// now, via one batched lookup of the distinct referenced jobs. A missing
// referenced job fails the whole request.
func (h *ApplicationHandler) HandleListMyApplications(c *fiber.Ctx) error {
	email := c.Query("email")
	if c.Locals(localsEmailKey) != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "forbidden access",
		})
	}

	applications, err := h.applicationRepo.FindByApplicantEmail(c.Context(), email)
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}

	jobIDs := make([]primitive.ObjectID, len(applications))
	distinct := make([]primitive.ObjectID, 0, len(applications))
	seen := make(map[primitive.ObjectID]struct{}, len(applications))
	for i, application := range applications {
		raw, _ := application["job_id"].(string)
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return fmt.Errorf("parse job_id: %w", err)
		}
		jobIDs[i] = id
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}

	jobs := map[primitive.ObjectID]models.Job{}
	if len(distinct) > 0 {
		jobs, err = h.jobRepo.FindByIDs(c.Context(), distinct)
		if err != nil {
			return fmt.Errorf("list applications: %w", err)
		}
	}

	for i, application := range applications {
		job, ok := jobs[jobIDs[i]]
		if !ok {
			return fmt.Errorf("list applications: job %s: %w",
				jobIDs[i].Hex(), repositories.ErrJobNotFound)
		}
		application["title"] = job.Title
		application["company"] = job.Company
		application["company_logo"] = job.CompanyLogo
		application["status"] = job.Status
		application["location"] = job.Location
	}

	return c.JSON(applications)
}

// HandleListJobApplicants is the GET /job-applications/jobs/:job_id
// endpoint. The path value is matched against the stored job_id string;
// no identifier conversion happens here.
func (h *ApplicationHandler) HandleListJobApplicants(c *fiber.Ctx) error {
	applications, err := h.applicationRepo.FindByJobID(c.Context(), c.Params("job_id"))
	if err != nil {
		return fmt.Errorf("list job applicants: %w", err)
	}

	return c.JSON(applications)
}

// HandleUpdateStatus is the PATCH /job-applications/:id endpoint. Only the
// status field is applied; anything else in the body is ignored.
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fmt.Errorf("parse application id: %w", err)
	}

	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "a status field is required",
		})
	}

	result, err := h.applicationRepo.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}

	return c.JSON(result)
}
