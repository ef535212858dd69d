package hackathons

import (
	"fmt"
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// ExportHackathon streams an xlsx report of registrations and submissions
// @Summary Export hackathon data as Excel
// @Description Organizer-only report with registration and scored submission sheets
// @Tags Hackathons
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Hackathon ID"
// @Success 200 {file} binary
// @Failure 401,403,404 {object} map[string]string
// @Router /hackathons/{id}/export [get]
// @Security Bearer
func ExportHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	file, err := services.NewExportService(database.DB).BuildWorkbook(c.Param("id"), user)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	defer file.Close()

	buf, err := file.WriteToBuffer()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("hackathon-%s.xlsx", c.Param("id"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
