package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/service"
	"github.com/gogotex/docstore/pkg/logger"
)

func RegisterDocumentRoutes(r gin.IRouter, svc service.Service) {
	r.POST("/api/documents", func(c *gin.Context) {
		var d document.Document
		if err := c.ShouldBindJSON(&d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		save(c, svc, &d)
	})

	// the path id wins over any id in the body
	r.PUT("/api/documents/:id", func(c *gin.Context) {
		var d document.Document
		if err := c.ShouldBindJSON(&d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d.ID = c.Param("id")
		save(c, svc, &d)
	})

	r.GET("/api/documents/:id", func(c *gin.Context) {
		d, err := svc.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			internalError(c, err)
			return
		}
		if d == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.GET("/api/documents", func(c *gin.Context) {
		req, err := searchRequestFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		search(c, svc, req)
	})

	r.POST("/api/documents/search", func(c *gin.Context) {
		var req document.SearchRequest
		// an empty body is an empty request
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		search(c, svc, &req)
	})
}

func save(c *gin.Context, svc service.Service, d *document.Document) {
	saved, err := svc.Save(c.Request.Context(), d)
	if err != nil {
		if errors.Is(err, document.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func search(c *gin.Context, svc service.Service, req *document.SearchRequest) {
	list, err := svc.Search(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func internalError(c *gin.Context, err error) {
	logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// searchRequestFromQuery reads repeatable titlePrefix, contains and authorId
// parameters plus RFC3339 createdFrom/createdTo bounds.
func searchRequestFromQuery(c *gin.Context) (*document.SearchRequest, error) {
	req := &document.SearchRequest{
		TitlePrefixes:    c.QueryArray("titlePrefix"),
		ContainsContents: c.QueryArray("contains"),
		AuthorIDs:        c.QueryArray("authorId"),
	}
	var err error
	if req.CreatedFrom, err = queryTime(c, "createdFrom"); err != nil {
		return nil, err
	}
	if req.CreatedTo, err = queryTime(c, "createdTo"); err != nil {
		return nil, err
	}
	return req, nil
}

func queryTime(c *gin.Context, key string) (*time.Time, error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &t, nil
}
