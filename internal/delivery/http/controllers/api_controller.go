package controllers

import (
	"log/slog"
	"net/http"

	"contributorsboard/internal/delivery/http/helpers"
	"contributorsboard/internal/domain"
)

// APIController serves the board data as JSON.
type APIController struct {
	Logger  *slog.Logger
	Service domain.BoardService
}

func NewAPIController(logger *slog.Logger, svc domain.BoardService) *APIController {
	return &APIController{
		Logger:  logger,
		Service: svc,
	}
}

// RolesSuccessResponse is the success response envelope for role lists (200).
type RolesSuccessResponse struct {
	Data  []domain.Role     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ContributorsSuccessResponse is the success response envelope for GET /api/contributors (200).
type ContributorsSuccessResponse struct {
	Data  []*domain.Contributor `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ContributorSuccessResponse is the success response envelope for GET /api/contributors/{handle} (200).
type ContributorSuccessResponse struct {
	Data  *domain.Contributor `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// TownHallIDsSuccessResponse is the success response envelope for GET /api/town-halls (200).
type TownHallIDsSuccessResponse struct {
	Data  []int             `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AwardGroupsSuccessResponse is the success response envelope for GET /api/awards (200).
type AwardGroupsSuccessResponse struct {
	Data  []domain.AwardGroup `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListRoles godoc
// @Summary List roles
// @Description Returns the roles offered as directory filters, in display order.
// @Tags roles
// @Produce json
// @Success 200 {object} controllers.RolesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/roles [get]
func (c *APIController) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := c.Service.Roles(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, roles)
}

// ListAwardRoles godoc
// @Summary List awarded roles
// @Description Returns the distinct roles that appear in any Town Hall award, in first-seen order.
// @Tags awards
// @Produce json
// @Success 200 {object} controllers.RolesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/award-roles [get]
func (c *APIController) ListAwardRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := c.Service.AwardRoles(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, roles)
}

// ListContributors godoc
// @Summary List contributors
// @Description Filters the directory by role ("All" or omitted for any) and a case-insensitive query over name, Discord and Twitter handle. Order is the curated roster order.
// @Tags contributors
// @Produce json
// @Param role query string false "Role name or All"
// @Param q query string false "Search text"
// @Success 200 {object} controllers.ContributorsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/contributors [get]
func (c *APIController) ListContributors(w http.ResponseWriter, r *http.Request) {
	role, ok, err := helpers.ParseRole(r, "role")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if !ok {
		role = domain.RoleAll
	}
	list, err := c.Service.FilterContributors(r.Context(), role, r.URL.Query().Get("q"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// GetContributor godoc
// @Summary Resolve a contributor by handle
// @Description Case-insensitive lookup by Twitter handle (a leading @ is ignored).
// @Tags contributors
// @Produce json
// @Param handle path string true "Twitter handle"
// @Success 200 {object} controllers.ContributorSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/contributors/{handle} [get]
func (c *APIController) GetContributor(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing handle")
		return
	}
	contributor, err := c.Service.ResolveContributor(r.Context(), handle)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, contributor)
}

// ListTownHalls godoc
// @Summary List Town Hall ids
// @Description Returns the distinct Town Hall ids, newest first.
// @Tags awards
// @Produce json
// @Success 200 {object} controllers.TownHallIDsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/town-halls [get]
func (c *APIController) ListTownHalls(w http.ResponseWriter, r *http.Request) {
	ids, err := c.Service.TownHallIDs(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ids)
}

// ListAwards godoc
// @Summary Award winners by role
// @Description Groups the award records for a role per Town Hall, newest first. Omitting role selects the default award role; "All" yields no groups. town_hall restricts to one Town Hall.
// @Tags awards
// @Produce json
// @Param role query string false "Role name"
// @Param town_hall query string false "Town Hall id or All"
// @Success 200 {object} controllers.AwardGroupsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/awards [get]
func (c *APIController) ListAwards(w http.ResponseWriter, r *http.Request) {
	role, ok, err := helpers.ParseRole(r, "role")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	townHall, err := helpers.ParseTownHall(r, "town_hall")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if !ok {
		if role, err = c.Service.DefaultAwardRole(r.Context()); err != nil {
			c.writeError(w, r, err)
			return
		}
	}
	if role == domain.RoleAll {
		helpers.WriteJSONSuccess(w, http.StatusOK, []domain.AwardGroup{})
		return
	}
	groups, err := c.Service.AwardeesByRole(r.Context(), role, townHall)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, groups)
}

func (c *APIController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteDomainError(w, err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}
