package repositories

import (
	"errors"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(userID string) (*models.CandidateProfile, error)
	// Save upserts the profile and replaces its skills, projects,
	// experiences and educations wholesale in one transaction.
	Save(profile *models.CandidateProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.
		Preload("Skills").
		Preload("Projects").
		Preload("Experiences").
		Preload("Educations").
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Save(profile *models.CandidateProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CandidateProfile
		err := tx.First(&existing, "user_id = ?", profile.UserID).Error
		switch {
		case err == nil:
			profile.ID = existing.ID
			profile.CreatedAt = existing.CreatedAt
			if err := tx.Model(&models.CandidateProfile{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"full_name":              profile.FullName,
					"education_level":        profile.EducationLevel,
					"experience_level":       profile.ExperienceLevel,
					"preferred_career_track": profile.PreferredCareerTrack,
					"target_role":            profile.TargetRole,
					"cv_file_name":           profile.CVFileName,
				}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.CandidateProfile{
				UserID:               profile.UserID,
				FullName:             profile.FullName,
				EducationLevel:       profile.EducationLevel,
				ExperienceLevel:      profile.ExperienceLevel,
				PreferredCareerTrack: profile.PreferredCareerTrack,
				TargetRole:           profile.TargetRole,
				CVFileName:           profile.CVFileName,
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			profile.ID = created.ID
			profile.CreatedAt = created.CreatedAt
		default:
			return err
		}

		// Sub-lists are never patched in place: delete everything the
		// profile owns and recreate from the request.
		for _, model := range []interface{}{
			&models.Skill{}, &models.Project{}, &models.WorkExperience{}, &models.Education{},
		} {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(model).Error; err != nil {
				return err
			}
		}

		for i := range profile.Skills {
			profile.Skills[i].ID = ""
			profile.Skills[i].ProfileID = profile.ID
		}
		for i := range profile.Projects {
			profile.Projects[i].ID = ""
			profile.Projects[i].ProfileID = profile.ID
		}
		for i := range profile.Experiences {
			profile.Experiences[i].ID = ""
			profile.Experiences[i].ProfileID = profile.ID
		}
		for i := range profile.Educations {
			profile.Educations[i].ID = ""
			profile.Educations[i].ProfileID = profile.ID
		}

		if len(profile.Skills) > 0 {
			if err := tx.Create(&profile.Skills).Error; err != nil {
				return err
			}
		}
		if len(profile.Projects) > 0 {
			if err := tx.Create(&profile.Projects).Error; err != nil {
				return err
			}
		}
		if len(profile.Experiences) > 0 {
			if err := tx.Create(&profile.Experiences).Error; err != nil {
				return err
			}
		}
		if len(profile.Educations) > 0 {
			if err := tx.Create(&profile.Educations).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
