package courses

import (
	"gorm.io/gorm"
)

func publishedCoursesQuery(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

func instructorCoursesQuery(db *gorm.DB, instructorID string) *gorm.DB {
	return db.Where("instructor_id = ?", instructorID)
}

// incrementViews bumps the view counter atomically, once per detail load.
func incrementViews(db *gorm.DB, courseID string) error {
	return db.Exec(`UPDATE courses SET views = views + 1 WHERE id = ?`, courseID).Error
}
