package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studenttrip/logger"
	"studenttrip/services"
)

const (
	formatMarkdown = "md"
	formatPDF      = "pdf"
)

// DownloadPlan exports a stored plan as Markdown (default) or PDF. Rendered
// PDFs are cached next to the plan so repeat downloads skip gofpdf.
func (h *Handler) DownloadPlan(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing plan ID"})
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", formatMarkdown))
	if format != formatMarkdown && format != formatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported format %q", format)})
		return
	}

	plans := h.planner.Store()
	plan, err := plans.GetPlan(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if format == formatMarkdown {
		c.Header("Content-Disposition", "attachment; filename="+services.MarkdownFileName(plan.Meta.Destination))
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(services.RenderMarkdown(plan)))
		return
	}

	data, ok := plans.GetExport(id, formatPDF)
	if !ok {
		data, err = services.GeneratePDFBytes(plan)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := plans.SaveExport(id, formatPDF, data); err != nil {
			logger.L().Warn("Could not cache PDF export", zap.String("plan_id", id), zap.Error(err))
		}
	}

	c.Header("Content-Disposition", "attachment; filename=student-travel-plan.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", data)
}
