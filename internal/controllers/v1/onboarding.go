package v1

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/store"
	"github.com/envelope-zero/onboarding/internal/wizard"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterOnboardingRoutes registers the routes for onboardings with
// the RouterGroup that is passed.
func RegisterOnboardingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsOnboardingList)
		r.POST("", CreateOnboarding)
	}

	// Onboarding with ID
	{
		r.OPTIONS("/:id", OptionsOnboardingDetail)
		r.GET("/:id", GetOnboarding)
		r.PATCH("/:id", UpdateOnboarding)
		r.DELETE("/:id", DeleteOnboarding)

		r.OPTIONS("/:id/submit", OptionsOnboardingSubmit)
		r.POST("/:id/submit", SubmitOnboarding)

		r.OPTIONS("/:id/department", OptionsOnboardingDepartment)
		r.GET("/:id/department", GetOnboardingDepartment)
		r.POST("/:id/department", SubmitOnboardingDepartment)
		r.DELETE("/:id/department", DismissOnboardingDepartment)

		r.OPTIONS("/:id/department/review", OptionsOnboardingDepartmentReview)
		r.POST("/:id/department/review", ReviewOnboardingDepartment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Onboardings
// @Success		204
// @Router			/v1/onboardings [options]
func OptionsOnboardingList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Onboardings
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id} [options]
func OptionsOnboardingDetail(c *gin.Context) {
	if _, ok := session(c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Onboardings
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id}/submit [options]
func OptionsOnboardingSubmit(c *gin.Context) {
	if _, ok := session(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Onboardings
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id}/department [options]
func OptionsOnboardingDepartment(c *gin.Context) {
	if _, ok := session(c); !ok {
		return
	}

	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Onboardings
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id}/department/review [options]
func OptionsOnboardingDepartmentReview(c *gin.Context) {
	if _, ok := session(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// session looks up the onboarding for the ID in the URI. If this fails,
// the error is written to the response.
func session(c *gin.Context) (*wizard.Session, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return nil, false
	}

	s, err := sessions.Get(uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return nil, false
	}

	return s, true
}

// respond writes the current state of the onboarding.
func respond(c *gin.Context, status int, s *wizard.Session) {
	var o Onboarding
	_ = s.Do(func(r *wizard.OrganizationReview) error {
		o = newOnboarding(c.GetString(string(models.DBContextURL)), s, r)
		return nil
	})

	c.JSON(status, OnboardingResponse{Data: o})
}

// transition runs fn on the onboarding and records the phase change.
func transition(c *gin.Context, s *wizard.Session, fn func(*wizard.OrganizationReview) error) error {
	return s.Do(func(r *wizard.OrganizationReview) error {
		before := r.State()
		err := fn(r)
		after := r.State()

		observe(before, after)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Str("onboarding", s.ID.String()).Err(err).Msg("onboarding step failed")
		} else if before != after {
			log.Info().Str("onboarding", s.ID.String()).Str("phase", after.Phase.String()).Int("department", after.Department).Msg("onboarding advanced")
		}

		return err
	})
}

// @Summary		Create onboarding
// @Description	Starts an organization onboarding with the draft collected by the wizard. Nothing is committed until the onboarding is submitted.
// @Tags			Onboardings
// @Accept			json
// @Produce		json
// @Success		201		{object}	OnboardingResponse
// @Failure		400		{object}	httperror.Error
// @Param			draft	body		OrganizationDraftEditable	true	"Organization draft"
// @Router			/v1/onboardings [post]
func CreateOnboarding(c *gin.Context) {
	var editable OrganizationDraftEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	review := wizard.NewOrganizationReview(store.New(models.DB), nil, editable.draft())
	s := sessions.Add(review)

	// Finished onboardings have nothing left to do and are dropped. The
	// response of the completing request still carries the final state.
	review.OnComplete = func() error {
		log.Info().Str("onboarding", s.ID.String()).Str("organization", review.OrganizationID().String()).Msg("onboarding complete")

		if err := sessions.Remove(s.ID); err != nil {
			log.Debug().Str("onboarding", s.ID.String()).Err(err).Msg("completed onboarding was already removed")
		}

		return nil
	}

	transitions.WithLabelValues(wizard.Reviewing.String()).Inc()
	respond(c, http.StatusCreated, s)
}

// @Summary		Get onboarding
// @Description	Returns the state of an onboarding with its budget summary and the department being set up
// @Tags			Onboardings
// @Produce		json
// @Success		200	{object}	OnboardingResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id} [get]
func GetOnboarding(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, s)
}

// @Summary		Update onboarding
// @Description	Replaces the draft of an onboarding. This is only possible before it has been submitted.
// @Tags			Onboardings
// @Accept			json
// @Produce		json
// @Success		200		{object}	OnboardingResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			draft	body		OrganizationDraftEditable	true	"Organization draft"
// @Router			/v1/onboardings/{id} [patch]
func UpdateOnboarding(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var editable OrganizationDraftEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = s.Do(func(r *wizard.OrganizationReview) error {
		return r.SetDraft(editable.draft())
	})
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	respond(c, http.StatusOK, s)
}

// @Summary		Delete onboarding
// @Description	Abandons an onboarding. Records that have already been committed are kept.
// @Tags			Onboardings
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id} [delete]
func DeleteOnboarding(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	err := sessions.Remove(s.ID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Submit onboarding
// @Description	Commits the organization with its budget categories and the first department, then starts the setup of the first department. An onboarding without departments is done and removed right away.
// @Tags			Onboardings
// @Produce		json
// @Success		200	{object}	OnboardingResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		409	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id}/submit [post]
func SubmitOnboarding(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	err := transition(c, s, func(r *wizard.OrganizationReview) error {
		return r.Submit()
	})
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	respond(c, http.StatusOK, s)
}

// activeModal returns the mounted department modal of the onboarding.
func activeModal(r *wizard.OrganizationReview) (*wizard.DepartmentSetupModal, error) {
	m := r.ActiveModal()
	if m == nil {
		return nil, wizard.ErrNoActiveDepartment
	}

	return m, nil
}

// @Summary		Get department setup
// @Description	Returns the department that is currently being set up
// @Tags			Onboardings
// @Produce		json
// @Success		200	{object}	DepartmentSetupResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		409	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id}/department [get]
func GetOnboardingDepartment(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var setup *DepartmentSetup
	err := s.Do(func(r *wizard.OrganizationReview) error {
		m, err := activeModal(r)
		if err != nil {
			return err
		}

		setup = newDepartmentSetup(r.State().Department, m)
		return nil
	})
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, DepartmentSetupResponse{Data: *setup})
}

// @Summary		Review department draft
// @Description	Returns the budget summary and the validation problems of a department draft without committing anything
// @Tags			Onboardings
// @Accept			json
// @Produce		json
// @Success		200		{object}	DepartmentSummaryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			draft	body		DepartmentDraftEditable	true	"Department draft"
// @Router			/v1/onboardings/{id}/department/review [post]
func ReviewOnboardingDepartment(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var editable DepartmentDraftEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var summary DepartmentSummary
	err = s.Do(func(r *wizard.OrganizationReview) error {
		m, err := activeModal(r)
		if err != nil {
			return err
		}

		// The preview never commits, so it does not need a store
		preview := wizard.NewDepartmentReview(nil, nil, m.DepartmentID, m.DepartmentBudget)
		preview.Draft = editable.draft()

		summary = newDepartmentSummary(preview.Summary(), r.Draft().Organization.Currency)
		if err := preview.Validate(); err != nil {
			summary.Errors = httperror.New(err).Fields
		}

		return nil
	})
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, DepartmentSummaryResponse{Data: summary})
}

// @Summary		Submit department setup
// @Description	Commits the managers, budgets and teams of the department that is being set up. Teams without a budget are skipped. Afterwards, the next department is committed and its setup starts.
// @Tags			Onboardings
// @Accept			json
// @Produce		json
// @Success		200		{object}	OnboardingResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			draft	body		DepartmentDraftEditable	true	"Department draft"
// @Router			/v1/onboardings/{id}/department [post]
func SubmitOnboardingDepartment(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var editable DepartmentDraftEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = transition(c, s, func(r *wizard.OrganizationReview) error {
		m, err := activeModal(r)
		if err != nil {
			return err
		}

		committed := m.Wizard().Submitted()
		err = m.Submit(editable.draft())
		if !committed && m.Wizard().Submitted() {
			departmentsCommitted.Inc()
		}

		return err
	})
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	respond(c, http.StatusOK, s)
}

// @Summary		Dismiss department setup
// @Description	Closes the setup of the current department and moves on to the next one. When the teams have not been submitted, none are committed for this department. After the last department, the onboarding is done and removed.
// @Tags			Onboardings
// @Produce		json
// @Success		200	{object}	OnboardingResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		409	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/onboardings/{id}/department [delete]
func DismissOnboardingDepartment(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	err := transition(c, s, func(r *wizard.OrganizationReview) error {
		m, err := activeModal(r)
		if err != nil {
			return err
		}

		return m.Close()
	})
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	respond(c, http.StatusOK, s)
}
