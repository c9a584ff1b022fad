package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/niverapp/event-system/internal/core/ports"
)

// ExpenseHandler handles HTTP requests for shared expense operations.
type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// List handles GET /api/expenses.
//
// @Summary      List all expenses
// @Tags         expenses
// @Produce      json
// @Success      200  {array}  domain.Expense
// @Failure      500  {object}  map[string]string
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	expenses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenses)
}

// Get handles GET /api/expenses/:id.
//
// @Summary      Get an expense by id
// @Tags         expenses
// @Produce      json
// @Param        id   path      int  true  "Expense id"
// @Success      200  {object}  domain.Expense
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return err
	}

	expense, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expense)
}

// Create handles POST /api/expenses.
//
// @Summary      Create an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      createExpenseRequest  true  "Expense fields"
// @Success      201   {object}  domain.Expense
// @Failure      400   {object}  map[string]string
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expense, err := h.service.Create(c.Request().Context(), ports.ExpenseInput{
		Description: req.Description,
		Value:       req.Value,
		Actor:       actorFromContext(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, expense)
}

// Update handles PUT /api/expenses/:id.
//
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Expense id"
// @Param        body  body      updateExpenseRequest  true  "Full expense"
// @Success      200   {object}  domain.Expense
// @Failure      404   {object}  map[string]string
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return err
	}

	var req updateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expense, err := h.service.Update(c.Request().Context(), id, ports.ExpenseInput{
		Description: req.Description,
		Value:       req.Value,
		Actor:       actorFromContext(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expense)
}

// Delete handles DELETE /api/expenses/:id. Deleting an already deleted
// expense reports 404; the effect is idempotent.
//
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Param        id   path      int  true  "Expense id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, actorFromContext(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Expense removed successfully"})
}

func expenseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid expense id")
	}
	return id, nil
}
