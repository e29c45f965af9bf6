package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/dto"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/integrity"
	"github.com/firmdesk/practice-service/internal/service"
)

// DocumentsHandler exposes document CRUD and integrity verification.
type DocumentsHandler struct {
	documents *service.DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documentService *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{documents: documentService}
}

// Create handles POST /documents.
func (h *DocumentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	doc := req.ToDomain()
	doc.UploadedBy = principal.Account.ID
	if err := h.documents.AddDocument(c.UserContext(), doc); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDocumentResponse(doc)})
}

// Update handles PUT /documents/:id.
func (h *DocumentsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	doc := req.ToDomain()
	doc.ID = c.Params("id")
	if err := h.documents.UpdateDocument(c.UserContext(), doc, principal.Account.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDocumentResponse(doc)})
}

// Delete handles DELETE /documents/:id.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.documents.DeleteDocument(c.UserContext(), c.Params("id"), principal.Account.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /documents/:id.
func (h *DocumentsHandler) Get(c *fiber.Ctx) error {
	doc, err := h.documents.GetDocument(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDocumentResponse(doc)})
}

// List handles GET /documents.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	docs, err := h.documents.ListDocuments(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, dto.NewDocumentResponse(&docs[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Verify handles POST /documents/:id/verify. The candidate file arrives as
// multipart form data under "file"; its modification time rides in the
// optional "last_modified" field as RFC 3339.
func (h *DocumentsHandler) Verify(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "multipart field 'file' required")
	}

	lastModified := time.Now().UTC()
	if raw := c.FormValue("last_modified"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "last_modified must be RFC 3339")
		}
		lastModified = parsed
	}

	fileType := c.FormValue("file_type")
	if fileType == "" {
		fileType = header.Header.Get(fiber.HeaderContentType)
	}

	content, err := header.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unable to read uploaded file")
	}
	defer content.Close()

	result, err := h.documents.VerifyIntegrity(c.UserContext(), c.Params("id"), integrity.LocalFile{
		Name:         header.Filename,
		SizeBytes:    header.Size,
		FileType:     fileType,
		LastModified: lastModified,
		Content:      content,
	}, principal.Account.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewVerificationResponse(c.Params("id"), result)})
}
