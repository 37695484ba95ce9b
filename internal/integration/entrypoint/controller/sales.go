package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/usecase/sales"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// SalesController handles product, sale and sales-script endpoints.
type SalesController struct {
	addProduct     *sales.AddProductUseCase
	deleteProduct  *sales.DeleteProductUseCase
	listProducts   *sales.ListProductsUseCase
	addSale        *sales.AddSaleUseCase
	deleteSale     *sales.DeleteSaleUseCase
	listSales      *sales.ListSalesUseCase
	generateScript *sales.GenerateScriptUseCase
	saveScript     *sales.SaveScriptUseCase
	deleteScript   *sales.DeleteScriptUseCase
	listScripts    *sales.ListScriptsUseCase
}

// NewSalesController creates a new sales controller instance.
func NewSalesController(
	addProduct *sales.AddProductUseCase,
	deleteProduct *sales.DeleteProductUseCase,
	listProducts *sales.ListProductsUseCase,
	addSale *sales.AddSaleUseCase,
	deleteSale *sales.DeleteSaleUseCase,
	listSales *sales.ListSalesUseCase,
	generateScript *sales.GenerateScriptUseCase,
	saveScript *sales.SaveScriptUseCase,
	deleteScript *sales.DeleteScriptUseCase,
	listScripts *sales.ListScriptsUseCase,
) *SalesController {
	return &SalesController{
		addProduct:     addProduct,
		deleteProduct:  deleteProduct,
		listProducts:   listProducts,
		addSale:        addSale,
		deleteSale:     deleteSale,
		listSales:      listSales,
		generateScript: generateScript,
		saveScript:     saveScript,
		deleteScript:   deleteScript,
		listScripts:    listScripts,
	}
}

// ListProducts handles GET /products requests.
func (c *SalesController) ListProducts(ctx *gin.Context) {
	output, err := c.listProducts.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	products := output.Products
	if products == nil {
		products = []entity.Product{}
	}
	ctx.JSON(http.StatusOK, dto.ProductListResponse{Products: products})
}

// CreateProduct handles POST /products requests.
func (c *SalesController) CreateProduct(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.addProduct.Execute(ctx.Request.Context(), sales.AddProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Media:       req.Media,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Product)
}

// DeleteProduct handles DELETE /products/:id requests. Sales and scripts
// that reference the product are left untouched.
func (c *SalesController) DeleteProduct(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	if err := c.deleteProduct.Execute(ctx.Request.Context(), sales.DeleteProductInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GenerateScript handles POST /products/:id/script requests. The result
// is returned but not stored.
func (c *SalesController) GenerateScript(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	output, err := c.generateScript.Execute(ctx.Request.Context(), sales.GenerateScriptInput{ProductID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GeneratedScriptResponse{Script: output.Script})
}

// ListSales handles GET /sales requests.
func (c *SalesController) ListSales(ctx *gin.Context) {
	output, err := c.listSales.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	salesList := output.Sales
	if salesList == nil {
		salesList = []entity.Sale{}
	}
	ctx.JSON(http.StatusOK, dto.SaleListResponse{Sales: salesList})
}

// CreateSale handles POST /sales requests.
func (c *SalesController) CreateSale(ctx *gin.Context) {
	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected AAAA-MM-DD",
		})
		return
	}

	output, err := c.addSale.Execute(ctx.Request.Context(), sales.AddSaleInput{
		ProductID: productID,
		Quantity:  req.Quantity,
		Date:      date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Sale)
}

// DeleteSale handles DELETE /sales/:id requests.
func (c *SalesController) DeleteSale(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
		})
		return
	}

	if err := c.deleteSale.Execute(ctx.Request.Context(), sales.DeleteSaleInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListScripts handles GET /sales-scripts requests.
func (c *SalesController) ListScripts(ctx *gin.Context) {
	output, err := c.listScripts.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	scripts := output.Scripts
	if scripts == nil {
		scripts = []entity.SalesScript{}
	}
	ctx.JSON(http.StatusOK, dto.ScriptListResponse{Scripts: scripts})
}

// SaveScript handles POST /sales-scripts requests.
func (c *SalesController) SaveScript(ctx *gin.Context) {
	var req dto.SaveScriptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	output, err := c.saveScript.Execute(ctx.Request.Context(), sales.SaveScriptInput{
		ProductID: productID,
		Script:    req.Script,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Script)
}

// DeleteScript handles DELETE /sales-scripts/:id requests.
func (c *SalesController) DeleteScript(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid script ID format",
		})
		return
	}

	if err := c.deleteScript.Execute(ctx.Request.Context(), sales.DeleteScriptInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
