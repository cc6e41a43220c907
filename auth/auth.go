package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/globals"
	"github.com/AurifyAE/Aurify-backend/middleware"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

const tokenTTL = 24 * time.Hour

func signToken(userID, adminID, role string) (string, error) {
	claims := middleware.Claims{
		UserID:  userID,
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// AdminLogin handles POST /admin/login with {userName, password}.
func AdminLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		UserName string `json:"userName"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if input.UserName == "" || input.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "userName and password are required")
		return
	}

	var admin models.Admin
	err := db.AdminsCollection.FindOne(ctx, bson.M{"userName": input.UserName}).Decode(&admin)
	if err != nil {
		utils.Fail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		utils.Fail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := signToken("", admin.ID.Hex(), "admin")
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.Success(w, http.StatusOK, "Login successful", utils.M{
		"token": token,
		"info": utils.M{
			"adminId":     admin.ID.Hex(),
			"userName":    admin.UserName,
			"companyName": admin.CompanyName,
			"email":       admin.Email,
			"features":    admin.Features,
		},
	})
}

// UserLogin handles POST /login/:adminId with {contact, password}. Users
// are scoped to the admin whose storefront they log into.
func UserLogin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var input struct {
		Contact  string `json:"contact"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if input.Contact == "" || input.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "contact and password are required")
		return
	}

	var user models.User
	err = db.UsersCollection.FindOne(ctx, bson.M{
		"createdBy": adminID,
		"contact":   input.Contact,
	}).Decode(&user)
	if err != nil {
		utils.Fail(w, http.StatusUnauthorized, "Invalid contact or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.Fail(w, http.StatusUnauthorized, "Invalid contact or password")
		return
	}

	token, err := signToken(user.ID.Hex(), adminID.Hex(), "user")
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.Success(w, http.StatusOK, "Login successful", utils.M{
		"token": token,
		"info": utils.M{
			"userId":      user.ID.Hex(),
			"name":        user.Name,
			"contact":     user.Contact,
			"cashBalance": user.CashBalance,
			"goldBalance": user.GoldBalance,
			"spread":      user.Spread,
		},
	})
}

// VerifyToken handles GET /verify-token; the middleware has already
// rejected invalid tokens, so reaching here means the token is good.
func VerifyToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.Success(w, http.StatusOK, "Token is valid", utils.M{
		"role":    r.Context().Value(globals.RoleKey),
		"userId":  r.Context().Value(globals.UserIDKey),
		"adminId": r.Context().Value(globals.AdminIDKey),
	})
}
