package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Scarred95/CloudCookbook/internal/models"
	"github.com/Scarred95/CloudCookbook/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler exposes plain user CRUD. There is no authentication layer;
// user ids are trusted as supplied.
type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

type userReq struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Active   *bool  `json:"active"`
}

func userResp(u *models.User) util.Response {
	return util.Response{
		"user": gin.H{
			"uid":          u.ID,
			"username":     u.Username,
			"active":       u.Active,
			"member_since": u.CreatedAt,
		},
	}
}

// Create adds a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateUsername(req.Username); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	user := models.User{
		Username: strings.TrimSpace(req.Username),
		Active:   true,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username already taken")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user could not be created")
		}
		return
	}

	util.Created(c, userResp(&user))
}

// Get returns one user by id.
func (h *UserHandler) Get(c *gin.Context) {
	uid, err := strconv.Atoi(c.Param("uid"))
	if err != nil || uid <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid user id")
		return
	}

	var user models.User
	if err := h.DB.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	util.Success(c, userResp(&user))
}

// Search returns one user by username (?username=ADMIN).
func (h *UserHandler) Search(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username is empty")
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	util.Success(c, userResp(&user))
}

// Update changes username or active flag of an existing user.
func (h *UserHandler) Update(c *gin.Context) {
	uid, err := strconv.Atoi(c.Param("uid"))
	if err != nil || uid <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid user id")
		return
	}

	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateUsername(req.Username); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var user models.User
	if err := h.DB.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	user.Username = strings.TrimSpace(req.Username)
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := h.DB.Save(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update failed")
		return
	}

	util.Success(c, userResp(&user))
}
