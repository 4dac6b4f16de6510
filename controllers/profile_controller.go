package controllers

import (
	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	utils.LogInfo("GetProfile called")

	user := c.MustGet("user").(models.User)

	utils.Success(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":            user.ID,
			"username":      user.Username,
			"email":         user.Email,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"phone":         user.Phone,
			"profile_image": user.ProfileImage,
			"is_verified":   user.IsVerified,
			"created_at":    user.CreatedAt,
		},
	})
}

// UpdateProfileRequest represents the profile edit payload
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// UpdateProfile edits the authenticated user's profile fields
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")

	user := c.MustGet("user").(models.User)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = utils.SanitizeString(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = utils.SanitizeString(*req.LastName)
	}
	if req.Phone != nil {
		if err := utils.ValidatePhone(*req.Phone); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		updates["phone"] = *req.Phone
	}

	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update profile for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile", nil)
		return
	}

	utils.Success(c, "Profile updated successfully", nil)
}

// ChangePasswordRequest represents the password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword rotates the authenticated user's password
func ChangePassword(c *gin.Context) {
	utils.LogInfo("ChangePassword called")

	user := c.MustGet("user").(models.User)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, user.Password) {
		utils.Unauthorized(c, "Current password is incorrect")
		return
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.InternalServerError(c, "Failed to update password", nil)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		utils.LogError("Failed to change password for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update password", nil)
		return
	}

	utils.LogInfo("User %d changed password", user.ID)
	utils.Success(c, "Password changed successfully", nil)
}
