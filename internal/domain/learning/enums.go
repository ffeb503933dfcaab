package learning

const (
	CourseStatusDraft     = "DRAFT"
	CourseStatusPublished = "PUBLISHED"
	CourseStatusArchived  = "ARCHIVED"
)

const (
	CategoryTechnical  = "TECHNICAL"
	CategorySoftSkills = "SOFT_SKILLS"
	CategoryCompliance = "COMPLIANCE"
	CategoryOther      = "OTHER"
)

const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

const (
	ContentVideo = "VIDEO"
	ContentPDF   = "PDF"
	ContentLink  = "LINK"
	ContentText  = "TEXT"
	ContentQuiz  = "QUIZ"
)

var (
	CourseStatuses = []string{CourseStatusDraft, CourseStatusPublished, CourseStatusArchived}
	Categories     = []string{CategoryTechnical, CategorySoftSkills, CategoryCompliance, CategoryOther}
	Difficulties   = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
	ContentTypes   = []string{ContentVideo, ContentPDF, ContentLink, ContentText, ContentQuiz}
)

func IsValidCourseStatus(s string) bool { return contains(CourseStatuses, s) }
func IsValidCategory(s string) bool     { return contains(Categories, s) }
func IsValidDifficulty(s string) bool   { return contains(Difficulties, s) }
func IsValidContentType(s string) bool  { return contains(ContentTypes, s) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
