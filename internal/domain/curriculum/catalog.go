// Package curriculum содержит статический каталог учебной программы:
// предметы, главы и темы. Каталог - внешние конфигурационные данные,
// потребляемые только на чтение; прогресс студента хранится отдельно
// и ссылается на каталог составными строковыми ключами.
package curriculum

// MilestoneType is one of the six fixed chapter-level preparation milestones.
type MilestoneType string

const (
	TheoryFamiliar      MilestoneType = "theory-familiar"
	TheoryComprehensive MilestoneType = "theory-comprehensive"
	TheoryFinalized     MilestoneType = "theory-finalized"
	PracticeBasic       MilestoneType = "practice-basic"
	PracticeHSC         MilestoneType = "practice-hsc"
	PracticeAdmission   MilestoneType = "practice-adm"
)

// MilestoneTypes returns all milestone types in display order.
func MilestoneTypes() []MilestoneType {
	return []MilestoneType{
		TheoryFamiliar,
		TheoryComprehensive,
		TheoryFinalized,
		PracticeBasic,
		PracticeHSC,
		PracticeAdmission,
	}
}

// IsValidMilestone reports whether t is one of the six known milestone types.
func IsValidMilestone(t MilestoneType) bool {
	switch t {
	case TheoryFamiliar, TheoryComprehensive, TheoryFinalized,
		PracticeBasic, PracticeHSC, PracticeAdmission:
		return true
	}
	return false
}

// TopicKey collapses the (subject, chapter, topic) triple into the composite
// string key used by progress storage. Uniqueness is guaranteed by the cross
// product of names, which are unique within the catalog.
func TopicKey(subject, chapter, topic string) string {
	return subject + "-" + chapter + "-" + topic
}

// MilestoneKey collapses (subject, chapter, milestone) into the composite key
// used for chapter-level preparation milestones.
func MilestoneKey(subject, chapter string, milestone MilestoneType) string {
	return subject + "-" + chapter + "-" + string(milestone)
}

// Chapter - глава предмета с упорядоченным списком тем.
type Chapter struct {
	Name   string
	Topics []string
}

// Subject - предмет с упорядоченным списком глав.
type Subject struct {
	ID       string
	Name     string
	Chapters []Chapter
}

// TopicCount returns the total number of topics across all chapters.
func (s Subject) TopicCount() int {
	n := 0
	for _, ch := range s.Chapters {
		n += len(ch.Topics)
	}
	return n
}

// Chapter returns the chapter with the given name, if present.
func (s Subject) Chapter(name string) (Chapter, bool) {
	for _, ch := range s.Chapters {
		if ch.Name == name {
			return ch, true
		}
	}
	return Chapter{}, false
}

// Catalog - полный каталог программы в стабильном порядке отображения.
type Catalog struct {
	subjects []Subject
	byName   map[string]int
}

// NewCatalog builds a catalog from an ordered subject list.
func NewCatalog(subjects []Subject) *Catalog {
	c := &Catalog{
		subjects: subjects,
		byName:   make(map[string]int, len(subjects)),
	}
	for i, s := range subjects {
		c.byName[s.Name] = i
	}
	return c
}

// Subjects returns all subjects in stable display order.
func (c *Catalog) Subjects() []Subject {
	return c.subjects
}

// Subject returns the subject with the given name, if present.
func (c *Catalog) Subject(name string) (Subject, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Subject{}, false
	}
	return c.subjects[i], true
}

// HasTopic reports whether the (subject, chapter, topic) triple exists.
func (c *Catalog) HasTopic(subject, chapter, topic string) bool {
	s, ok := c.Subject(subject)
	if !ok {
		return false
	}
	ch, ok := s.Chapter(chapter)
	if !ok {
		return false
	}
	for _, t := range ch.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// HasChapter reports whether the (subject, chapter) pair exists.
func (c *Catalog) HasChapter(subject, chapter string) bool {
	s, ok := c.Subject(subject)
	if !ok {
		return false
	}
	_, ok = s.Chapter(chapter)
	return ok
}

// TotalTopics returns the number of topics across the whole catalog.
func (c *Catalog) TotalTopics() int {
	n := 0
	for _, s := range c.subjects {
		n += s.TopicCount()
	}
	return n
}
