package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduverify/internship-portal/internal/app/models/dto"
	"github.com/eduverify/internship-portal/internal/app/services"
	"github.com/eduverify/internship-portal/internal/middleware"
)

// DocumentController handles certificate and attendance sheet generation
type DocumentController struct {
	documentService services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService services.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// GenerateCertificate verifies a student and streams their certificate
// @Summary Generate internship certificate
// @Description Verifies the supplied identity against the stored record and returns the filled certificate PDF
// @Tags documents
// @Accept json
// @Produce application/pdf
// @Param request body dto.DocumentRequest true "Verification details"
// @Success 200 {file} binary "Filled certificate PDF"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 403 {object} dto.ErrorResponse "Name does not match the record"
// @Failure 404 {object} dto.ErrorResponse "No matching student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /generate-certificate [post]
func (c *DocumentController) GenerateCertificate(ctx *gin.Context) {
	var req dto.DocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Name, Registration ID, and Date of Birth are required",
		})
		return
	}

	document, err := c.documentService.GenerateCertificate(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	streamDocument(ctx, document)
}

// GenerateAttendanceSheet verifies a student and streams their attendance sheet
// @Summary Generate attendance sheet
// @Description Verifies the supplied identity against the stored record and returns the filled attendance sheet PDF
// @Tags documents
// @Accept json
// @Produce application/pdf
// @Param request body dto.DocumentRequest true "Verification details"
// @Success 200 {file} binary "Filled attendance sheet PDF"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 403 {object} dto.ErrorResponse "Name does not match the record"
// @Failure 404 {object} dto.ErrorResponse "No matching student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /generate-attendance [post]
func (c *DocumentController) GenerateAttendanceSheet(ctx *gin.Context) {
	var req dto.DocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Name, Registration ID, and Date of Birth are required",
		})
		return
	}

	document, err := c.documentService.GenerateAttendanceSheet(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	streamDocument(ctx, document)
}

// Health reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /health [get]
func (c *DocumentController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Server is running correctly!",
	})
}

func streamDocument(ctx *gin.Context, document *services.GeneratedDocument) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", document.Filename))
	ctx.Data(http.StatusOK, "application/pdf", document.Content)
}
