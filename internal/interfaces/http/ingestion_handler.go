package http

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/ingest"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/csvsource"
)

// IngestionHandler recibe exportaciones de POS por multipart.
type IngestionHandler struct {
	uc    *ingest.UseCase
	locks *StoreLocks
	log   zerolog.Logger
}

// NewIngestionHandler construye el handler.
func NewIngestionHandler(uc *ingest.UseCase, locks *StoreLocks, log zerolog.Logger) *IngestionHandler {
	return &IngestionHandler{uc: uc, locks: locks, log: log}
}

// Run godoc
// @Summary      Ingestar exportación de inventario de una tienda
// @Tags         ingestions
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file    true   "CSV del POS"
// @Param        store     formData  string  true   "Nombre de la tienda"
// @Param        supplier  formData  string  false  "Proveedor"
// @Success      200  {object}  dto.RunReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ingestions [post]
func (h *IngestionHandler) Run(c *fiber.Ctx) error {
	store := c.FormValue("store")
	if store == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store es requerido"})
	}
	unlock, ok := h.locks.TryLock(store)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RUN_IN_PROGRESS", Message: fmt.Sprintf("ya hay una ingesta en curso para %q", store)})
	}
	defer unlock()

	file, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer file.Close()

	report, err := h.uc.Ingest(c.UserContext(), csvsource.NewReader(file), store, c.FormValue("supplier"))
	if err != nil {
		h.log.Error().Err(err).Str("store", store).Msg("ingesta fallida")
		return writeError(c, err)
	}
	return c.JSON(report)
}

// Preview godoc
// @Summary      Normalizar una exportación sin escribir en BD
// @Tags         ingestions
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV del POS"
// @Success      200  {object}  dto.PreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ingestions/preview [post]
func (h *IngestionHandler) Preview(c *fiber.Ctx) error {
	file, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer file.Close()

	out, err := h.uc.Preview(csvsource.NewReader(file))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func openUpload(c *fiber.Ctx) (multipart.File, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("campo file requerido: %w", err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	return f, nil
}
