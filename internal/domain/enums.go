package domain

// Kind identifies the variant of an output node.
type Kind string

const (
	KindTopic    Kind = "topic"
	KindExercise Kind = "exercise"
	KindVideo    Kind = "video"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindTopic, KindExercise, KindVideo:
		return true
	}
	return false
}

// FileType identifies the role of a file attached to a video.
type FileType string

const (
	FileTypeVideo     FileType = "video"
	FileTypeSubtitles FileType = "subtitles"
)

func (f FileType) String() string { return string(f) }

// QuestionType identifies the renderer for an exercise question.
type QuestionType string

const (
	QuestionTypePerseus QuestionType = "perseus_question"
)

func (q QuestionType) String() string { return string(q) }

// LicenseID identifies a normalized content license.
type LicenseID string

const (
	LicenseCCBY               LicenseID = "CC BY"
	LicenseCCBYSA             LicenseID = "CC BY-SA"
	LicenseCCBYND             LicenseID = "CC BY-ND"
	LicenseCCBYNC             LicenseID = "CC BY-NC"
	LicenseCCBYNCSA           LicenseID = "CC BY-NC-SA"
	LicenseCCBYNCND           LicenseID = "CC BY-NC-ND"
	LicenseAllRightsReserved  LicenseID = "All Rights Reserved"
	LicensePublicDomain       LicenseID = "Public Domain"
	LicenseSpecialPermissions LicenseID = "Special Permissions"
)

func (l LicenseID) String() string { return string(l) }

func (l LicenseID) IsValid() bool {
	switch l {
	case LicenseCCBY, LicenseCCBYSA, LicenseCCBYND, LicenseCCBYNC, LicenseCCBYNCSA,
		LicenseCCBYNCND, LicenseAllRightsReserved, LicensePublicDomain, LicenseSpecialPermissions:
		return true
	}
	return false
}

// MasteryModelName identifies a mastery criterion.
type MasteryModelName string

const (
	MasteryModelDoAll              MasteryModelName = "do_all"
	MasteryModelSkillCheck         MasteryModelName = "skill_check"
	MasteryModelMOfN               MasteryModelName = "m_of_n"
	MasteryModelNumCorrectInARow2  MasteryModelName = "num_correct_in_a_row_2"
	MasteryModelNumCorrectInARow3  MasteryModelName = "num_correct_in_a_row_3"
	MasteryModelNumCorrectInARow5  MasteryModelName = "num_correct_in_a_row_5"
	MasteryModelNumCorrectInARow10 MasteryModelName = "num_correct_in_a_row_10"
)

func (m MasteryModelName) String() string { return string(m) }

func (m MasteryModelName) IsValid() bool {
	switch m {
	case MasteryModelDoAll, MasteryModelSkillCheck, MasteryModelMOfN,
		MasteryModelNumCorrectInARow2, MasteryModelNumCorrectInARow3,
		MasteryModelNumCorrectInARow5, MasteryModelNumCorrectInARow10:
		return true
	}
	return false
}
