package athlete

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lildude/athletedash/internal/database"
	"github.com/lildude/athletedash/internal/middleware"
	"github.com/lildude/athletedash/internal/model"
	"github.com/lildude/athletedash/internal/sanitize"
	"github.com/lildude/athletedash/internal/sessions"
	"github.com/lildude/athletedash/internal/views"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ListURL is where the athlete list lives.
const ListURL = "/dashboard/athletes"

type listPage struct {
	views.Page
	Athletes []model.Athlete
}

type detailPage struct {
	views.Page
	Athlete        *model.Athlete
	AthleteWeights []model.WeightSummary
	Org            string
}

type formPage struct {
	views.Page
	Athlete *model.Athlete
	Genders []string
	Errors  []string
	Action  string
	Create  bool

	// GradYear and BodyFat hold the input as typed when the form is shown again.
	GradYear string
	BodyFat  string
}

type historyPage struct {
	views.Page
	Athlete        *model.Athlete
	AthleteWeights []model.Weight
}

// routeID returns the sanitized {id} route variable.
func routeID(r *http.Request) string {
	return sanitize.EscapeTrim(mux.Vars(r)["id"])
}

// List displays every athlete sorted by last name.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	athletes, err := database.ListAthletes(r.Context(), h.DB)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, http.StatusOK, views.AthleteList, listPage{
		Page:     h.page(w, r, "Athlete List"),
		Athletes: athletes,
	})
}

// Detail displays an athlete with their weights and organization.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var (
		athlete *model.Athlete
		weights []model.WeightSummary
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		athlete, err = database.GetAthleteByID(ctx, h.DB, id)
		return err
	})
	g.Go(func() (err error) {
		weights, err = database.ListWeightSummaries(ctx, h.DB, id)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}

	org, err := h.orgName(r.Context(), athlete.OrgID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, http.StatusOK, views.AthleteDetail, detailPage{
		Page:           h.page(w, r, athlete.Name()),
		Athlete:        athlete,
		AthleteWeights: weights,
		Org:            org,
	})
}

// CreateGet is a placeholder until the create form exists.
func (h *Handler) CreateGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("NOT IMPLEMENTED: athlete create GET")); err != nil {
		h.Log.WithError(err).Error("writing response")
	}
}

// CreatePost registers a new athlete in the current admin's organization and
// sends the user on to complete the athlete's details.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, badRequest("Failed to parse form."))
		return
	}

	form := parseCreateForm(r.PostForm)
	if errs := form.validate(); len(errs) > 0 {
		h.render(w, http.StatusOK, views.AthleteForm, formPage{
			Page:    h.page(w, r, "Create Athlete"),
			Athlete: form.athlete(""),
			Errors:  errs,
			Action:  "/dashboard/athlete/create",
			Create:  true,
		})
		return
	}

	org, err := database.GetOrgByAdmin(r.Context(), h.DB, middleware.UserID(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	athlete := form.athlete(org.ID)
	if err := database.CreateAthlete(r.Context(), h.DB, athlete); err != nil {
		h.fail(w, r, err)
		return
	}
	h.Log.WithFields(logrus.Fields{"athlete_id": athlete.ID, "org_id": org.ID}).Info("athlete created")

	h.flash(w, r, sessions.FlashSuccess, "You have registered a new athlete")
	http.Redirect(w, r, athlete.URL()+"/update", http.StatusSeeOther)
}

// DeletePost removes the athlete named in the body and returns to the list.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, badRequest("Failed to parse form."))
		return
	}

	id := sanitize.EscapeTrim(r.PostForm.Get("athleteid"))
	if id == "" {
		h.fail(w, r, badRequest("Athlete id must exist."))
		return
	}
	if rid := routeID(r); rid != "" && rid != id {
		h.fail(w, r, badRequest("Athlete id does not match the page."))
		return
	}

	var (
		athlete *model.Athlete
		weights []model.Weight
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		athlete, err = database.GetAthleteByID(ctx, h.DB, id)
		return err
	})
	g.Go(func() (err error) {
		weights, err = database.ListWeights(ctx, h.DB, id)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}

	removed, err := database.DeleteAthlete(r.Context(), h.DB, athlete.ID, h.CascadeDelete)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	log := h.Log.WithFields(logrus.Fields{"athlete_id": athlete.ID, "weights": len(weights)})
	msg := fmt.Sprintf("Deleted %s.", athlete.Name())
	if h.CascadeDelete {
		log.Info("athlete and weights deleted")
		msg = fmt.Sprintf("Deleted %s and %d weight records.", athlete.Name(), removed)
	} else {
		log.Info("athlete deleted, weights kept")
	}

	h.flash(w, r, sessions.FlashSuccess, msg)
	http.Redirect(w, r, ListURL, http.StatusSeeOther)
}

// UpdateGet displays the edit form for an athlete.
func (h *Handler) UpdateGet(w http.ResponseWriter, r *http.Request) {
	athlete, err := database.GetAthleteByID(r.Context(), h.DB, routeID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, http.StatusOK, views.AthleteForm, formPage{
		Page:    h.page(w, r, "Update Athlete"),
		Athlete: athlete,
		Genders: model.Genders,
		Action:  athlete.URL() + "/update",
	})
}

// UpdatePost replaces an athlete with the submitted values, or re-renders
// the form with the errors and the values as entered.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, badRequest("Failed to parse form."))
		return
	}

	form := parseUpdateForm(r.PostForm)
	errs := form.validate()
	athlete := form.athlete(id)
	if len(errs) > 0 {
		h.render(w, http.StatusOK, views.AthleteForm, formPage{
			Page:    h.page(w, r, "Error Updating Athlete"),
			Athlete: athlete,
			Genders: model.Genders,
			Errors:  errs,
			Action:  athlete.URL() + "/update",

			GradYear: form.GradYear,
			BodyFat:  form.BodyFat,
		})
		return
	}

	if err := database.ReplaceAthlete(r.Context(), h.DB, athlete); err != nil {
		h.fail(w, r, err)
		return
	}
	h.Log.WithField("athlete_id", id).Info("athlete updated")

	http.Redirect(w, r, athlete.URL(), http.StatusSeeOther)
}

// History displays an athlete's weigh-ins.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var (
		athlete *model.Athlete
		weights []model.Weight
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		athlete, err = database.GetAthleteProfile(ctx, h.DB, id)
		return err
	})
	g.Go(func() (err error) {
		weights, err = database.ListWeightHistory(ctx, h.DB, id)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, http.StatusOK, views.AthleteHistory, historyPage{
		Page:           h.page(w, r, athlete.Name()+" History"),
		Athlete:        athlete,
		AthleteWeights: weights,
	})
}
