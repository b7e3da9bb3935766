package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alfredoptarigan/job-portal/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
	}
}

// HandleListJobs is the GET /jobs endpoint. An email query narrows the list
// to that employer's postings; no match means an empty list, never an error.
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	filter := bson.M{}
	if email := c.Query("email"); email != "" {
		filter["hr_email"] = email
	}

	jobs, err := h.jobRepo.Find(c.Context(), filter)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}

	return c.JSON(jobs)
}

// HandleGetJob is the GET /jobs/:id endpoint. A well-formed id that matches
// nothing yields a null body with a success status.
func (h *JobHandler) HandleGetJob(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fmt.Errorf("parse job id: %w", err)
	}

	job, err := h.jobRepo.FindByID(c.Context(), id)
	if err != nil {
		return fmt.Errorf("get job: %w", err)
	}

	return c.JSON(job)
}

// HandleCreateJob is the POST /jobs endpoint. The body is stored exactly as
// submitted; no field is validated or reshaped.
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var job bson.M
	if err := c.BodyParser(&job); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	result, err := h.jobRepo.Insert(c.Context(), job)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	return c.JSON(result)
}
