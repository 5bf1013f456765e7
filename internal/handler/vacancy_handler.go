package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/model"
	"jobboard/internal/service"
)

// VacancyHandler handles vacancy pages. All routes sit behind the gate;
// role restrictions come from its rule table. Store failures on
// mutations are logged and the response redirects anyway.
type VacancyHandler struct {
	vacancyService service.VacancyService
}

// NewVacancyHandler creates a new vacancy handler.
func NewVacancyHandler(vacancyService service.VacancyService) *VacancyHandler {
	return &VacancyHandler{vacancyService: vacancyService}
}

// VacancyForm represents the vacancy fields submitted by the create and
// edit forms. CompanyID is accepted on create and falls back to the
// requester when absent.
type VacancyForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
	Location    string `form:"location"`
	Contract    string `form:"contract"`
	CompanyID   string `form:"companyId"`
}

func (f VacancyForm) input() service.VacancyInput {
	return service.VacancyInput{
		Title:       f.Title,
		Description: f.Description,
		Category:    f.Category,
		Tags:        f.Tags,
		Location:    f.Location,
		Contract:    f.Contract,
	}
}

// ShowCreate godoc
// @Summary Render the vacancy creation form
// @Tags vacancies
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /vacancy/create [get]
func (h *VacancyHandler) ShowCreate(c echo.Context) error {
	return c.Render(http.StatusOK, "vacancy_add.html", map[string]interface{}{
		"User": CurrentUser(c),
	})
}

// Create godoc
// @Summary Create a vacancy
// @Tags vacancies
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "redirect to /vacancies"
// @Router /vacancy/create [post]
func (h *VacancyHandler) Create(c echo.Context) error {
	var form VacancyForm
	if err := c.Bind(&form); err != nil {
		c.Logger().Errorf("bind vacancy form: %v", err)
		return c.Redirect(http.StatusFound, "/vacancies")
	}

	if _, err := h.vacancyService.Create(c.Request().Context(), form.input(), form.CompanyID, CurrentUser(c)); err != nil {
		c.Logger().Errorf("create vacancy: %v", err)
	}
	return c.Redirect(http.StatusFound, "/vacancies")
}

// Details godoc
// @Summary Render one vacancy
// @Tags vacancies
// @Produce html
// @Param id path string true "Vacancy ID"
// @Success 200 {string} string "HTML"
// @Router /vacancy/details/{id} [get]
func (h *VacancyHandler) Details(c echo.Context) error {
	user := CurrentUser(c)
	vacancy := h.lookup(c)
	return c.Render(http.StatusOK, "vacancy_details.html", map[string]interface{}{
		"Vacancy":  vacancy,
		"User":     user,
		"CanApply": vacancy != nil && user.Role == model.RoleCandidate,
	})
}

// List godoc
// @Summary List vacancies
// @Description Company users see their own postings; everyone else sees all of them.
// @Tags vacancies
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /vacancies [get]
func (h *VacancyHandler) List(c echo.Context) error {
	user := CurrentUser(c)
	vacancies, err := h.vacancyService.ListFor(c.Request().Context(), user)
	if err != nil {
		c.Logger().Errorf("list vacancies: %v", err)
	}

	template := "vacancy_list_personal.html"
	if user.Role == model.RoleCompany {
		template = "vacancy_list.html"
	}
	return c.Render(http.StatusOK, template, map[string]interface{}{
		"Vacancies": vacancies,
		"User":      user,
	})
}

// Filter godoc
// @Summary List vacancies matching title/category/location prefixes
// @Tags vacancies
// @Produce html
// @Param title query string false "Title prefix"
// @Param category query string false "Category prefix"
// @Param location query string false "Location prefix"
// @Param tags query string false "Accepted but not applied"
// @Success 200 {string} string "HTML"
// @Router /vacancies/filters [get]
func (h *VacancyHandler) Filter(c echo.Context) error {
	// The tags parameter is accepted but takes no part in the filter.
	vacancies, err := h.vacancyService.Filter(
		c.Request().Context(),
		c.QueryParam("title"),
		c.QueryParam("category"),
		c.QueryParam("location"),
	)
	if err != nil {
		c.Logger().Errorf("filter vacancies: %v", err)
	}
	return c.Render(http.StatusOK, "vacancy_list_personal.html", map[string]interface{}{
		"Vacancies": vacancies,
		"User":      CurrentUser(c),
	})
}

// ShowEdit godoc
// @Summary Render the vacancy edit form
// @Tags vacancies
// @Produce html
// @Param id path string true "Vacancy ID"
// @Success 200 {string} string "HTML"
// @Router /vacancy/edit/{id} [get]
func (h *VacancyHandler) ShowEdit(c echo.Context) error {
	return c.Render(http.StatusOK, "vacancy_edit.html", map[string]interface{}{
		"Vacancy": h.lookup(c),
		"User":    CurrentUser(c),
	})
}

// Edit godoc
// @Summary Apply edits to a vacancy
// @Tags vacancies
// @Accept x-www-form-urlencoded
// @Param id path string true "Vacancy ID"
// @Success 302 {string} string "redirect to /vacancies"
// @Router /vacancy/edit/{id} [post]
func (h *VacancyHandler) Edit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/vacancies")
	}

	var form VacancyForm
	if err := c.Bind(&form); err != nil {
		c.Logger().Errorf("bind vacancy form: %v", err)
		return c.Redirect(http.StatusFound, "/vacancies")
	}

	if err := h.vacancyService.Update(c.Request().Context(), id, form.input()); err != nil {
		c.Logger().Errorf("update vacancy: %v", err)
	}
	return c.Redirect(http.StatusFound, "/vacancies")
}

// Delete godoc
// @Summary Delete a vacancy
// @Tags vacancies
// @Param id path string true "Vacancy ID"
// @Success 302 {string} string "redirect to /vacancies"
// @Router /vacancy/delete/{id} [post]
func (h *VacancyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/vacancies")
	}

	if err := h.vacancyService.Delete(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("delete vacancy: %v", err)
	}
	return c.Redirect(http.StatusFound, "/vacancies")
}

// Apply godoc
// @Summary Apply to a vacancy
// @Tags vacancies
// @Param id path string true "Vacancy ID"
// @Success 302 {string} string "redirect to the vacancy"
// @Router /vacancy/apply/{id} [post]
func (h *VacancyHandler) Apply(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/vacancies")
	}

	if err := h.vacancyService.Apply(c.Request().Context(), id, CurrentUser(c)); err != nil {
		c.Logger().Errorf("apply to vacancy: %v", err)
	}
	return c.Redirect(http.StatusFound, "/vacancy/details/"+id.String())
}

// lookup fetches the vacancy named by the :id param. Malformed ids and
// missing records both come back nil and flow into the view as-is.
func (h *VacancyHandler) lookup(c echo.Context) *model.Vacancy {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil
	}
	vacancy, err := h.vacancyService.Get(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("find vacancy: %v", err)
		return nil
	}
	return vacancy
}
