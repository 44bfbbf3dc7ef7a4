package userControllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateUserInput holds the profile fields a user may change. Email, password
// and role are fixed at registration.
type UpdateUserInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   any     `json:"address"`
}

// GET /users (admin)
func GetAllUsers(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := s.ReadAll(c.Request.Context(), models.CollectionUsers)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("read users", err))
			return
		}

		users := make([]models.PublicUser, 0, len(records))
		for _, rec := range records {
			users = append(users, models.UserFromRecord(rec).Public())
		}
		// newest first
		sort.SliceStable(users, func(i, j int) bool {
			return newerID(users[i].ID, users[j].ID)
		})
		respond.Data(c, http.StatusOK, users)
	}
}

// newerID orders integer ids numerically and ObjectID hex ids lexically, which
// follows their embedded creation time. Hex ids sort as newer than integer ids.
func newerID(a, b any) bool {
	ai, aok := models.IntID(a)
	bi, bok := models.IntID(b)
	switch {
	case aok && bok:
		return ai > bi
	case aok != bok:
		return bok
	}
	return models.IDString(a) > models.IDString(b)
}

// PUT /users/me
func UpdateUser(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			respond.Error(c, log, apperr.Authentication("Not authenticated"))
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Error(c, log, apperr.Validation("Invalid request body"))
			return
		}

		updates := models.Record{}
		if input.FirstName != nil {
			if strings.TrimSpace(*input.FirstName) == "" {
				respond.Error(c, log, apperr.Validation("firstName cannot be empty"))
				return
			}
			updates["firstName"] = strings.TrimSpace(*input.FirstName)
		}
		if input.LastName != nil {
			if strings.TrimSpace(*input.LastName) == "" {
				respond.Error(c, log, apperr.Validation("lastName cannot be empty"))
				return
			}
			updates["lastName"] = strings.TrimSpace(*input.LastName)
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Address != nil {
			updates["address"] = input.Address
		}

		ctx := c.Request.Context()
		records, err := s.ReadAll(ctx, models.CollectionUsers)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("read users", err))
			return
		}
		match := store.ByID(user.IDString())
		for i, rec := range records {
			if !match(rec) {
				continue
			}
			updated := rec.Clone()
			for k, v := range updates {
				updated[k] = v
			}
			if len(updates) > 0 {
				records[i] = updated
				if err := s.WriteAll(ctx, models.CollectionUsers, records); err != nil {
					respond.Error(c, log, apperr.Wrap("write users", err))
					return
				}
			}
			respond.Data(c, http.StatusOK, models.UserFromRecord(updated).Public())
			return
		}
		respond.Error(c, log, apperr.NotFound("User not found"))
	}
}
