package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// DownloadResume records a download event and returns resume metadata.
// No file content is transferred; clients fetch the object through the
// returned presigned URL when storage is configured.
//
// @Summary Download resume metadata
// @Tags resume
// @Produce json
// @Success 200 {object} model.APIResponse{data=model.ResumeInfo}
// @Failure 500 {object} model.APIResponse
// @Router /api/resume/download [get]
func DownloadResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info, ok := svc.Download(c.UserContext(), requestMeta(c))
		if !ok {
			return writeError(c, fiber.StatusInternalServerError, "failed to initiate download")
		}
		return writeSuccess(c, "Resume download initiated", info)
	}
}
