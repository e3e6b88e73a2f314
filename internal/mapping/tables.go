// Package mapping holds the static lookup tables that normalize source
// vocabularies (licenses, mastery models, video languages) into output form.
package mapping

import "github.com/heartmarshall/contentchef/internal/domain"

// CopyrightHolder is attributed on every license produced by the chef.
const CopyrightHolder = "Khan Academy"

var licenses = map[string]domain.License{
	"CC BY":       {ID: domain.LicenseCCBY, CopyrightHolder: CopyrightHolder},
	"CC BY-NC":    {ID: domain.LicenseCCBYNC, CopyrightHolder: CopyrightHolder},
	"CC BY-NC-ND": {ID: domain.LicenseCCBYNCND, CopyrightHolder: CopyrightHolder},
	"CC BY-NC-SA (KA default)": {
		ID:              domain.LicenseCCBYNCSA,
		CopyrightHolder: CopyrightHolder,
	},
	"CC BY-SA": {ID: domain.LicenseCCBYSA, CopyrightHolder: CopyrightHolder},
	"Non-commercial/non-Creative Commons (College Board)": {
		ID:              domain.LicenseSpecialPermissions,
		CopyrightHolder: CopyrightHolder,
		Description:     "Non-commercial/non-Creative Commons (College Board)",
	},
}

// License maps a source license key to its normalized license.
// Unknown keys report false.
func License(key string) (domain.License, bool) {
	l, ok := licenses[key]
	return l, ok
}

// ExerciseLicense is the fixed license of every converted exercise.
func ExerciseLicense() domain.License {
	return domain.License{
		ID:              domain.LicenseSpecialPermissions,
		CopyrightHolder: CopyrightHolder,
		Description:     "Permission granted to distribute through Kolibri for non-commercial use",
	}
}

var masteryModels = map[string]domain.MasteryModel{
	"do-all":                  {Model: domain.MasteryModelDoAll},
	"skill-check":             {Model: domain.MasteryModelSkillCheck},
	"num_problems_4":          {Model: domain.MasteryModelMOfN, M: 3, N: 4},
	"num_problems_7":          {Model: domain.MasteryModelMOfN, M: 5, N: 7},
	"num_problems_14":         {Model: domain.MasteryModelMOfN, M: 10, N: 14},
	"num_correct_in_a_row_2":  {Model: domain.MasteryModelNumCorrectInARow2},
	"num_correct_in_a_row_3":  {Model: domain.MasteryModelNumCorrectInARow3},
	"num_correct_in_a_row_5":  {Model: domain.MasteryModelNumCorrectInARow5},
	"num_correct_in_a_row_10": {Model: domain.MasteryModelNumCorrectInARow10},
}

// DefaultMasteryModel is used for exercises whose mastery key is unknown.
var DefaultMasteryModel = domain.MasteryModel{Model: domain.MasteryModelMOfN, M: 3, N: 4}

// MasteryModel maps a source mastery key to its output mastery model.
func MasteryModel(key string) (domain.MasteryModel, bool) {
	m, ok := masteryModels[key]
	return m, ok
}

// videoLanguages lists target languages whose videos come from another
// language's dubbed catalog.
var videoLanguages = map[string]string{
	"pt-BR":   "pt",
	"pt-PT":   "pt",
	"zh-Hans": "zh-CN",
	"fuv":     "fv",
}

// VideoLanguage returns the language code used when matching videos and
// subtitles for the target language. Codes without a mapping are returned unchanged.
func VideoLanguage(target string) string {
	if v, ok := videoLanguages[target]; ok {
		return v
	}
	return target
}

var unsubtitled = map[string]bool{
	"hy":    true,
	"my":    true,
	"sw":    true,
	"pt-PT": true,
}

// IsUnsubtitled reports whether subtitles are never attached for the target language.
func IsUnsubtitled(target string) bool {
	return unsubtitled[target]
}

var channelDescriptions = map[string]string{
	"es":    "Khan Academy ofrece ejercicios de práctica, videos instructivos y un panel de aprendizaje personalizado.",
	"fr":    "Khan Academy propose des exercices, des vidéos pédagogiques et un tableau de bord d'apprentissage personnalisé.",
	"pt-BR": "A Khan Academy oferece exercícios, vídeos de instrução e um painel de aprendizado personalizado.",
	"sw":    "Khan Academy inatoa mazoezi, video za mafundisho na dashibodi ya kujifunza iliyobinafsishwa.",
}

// ChannelDescription returns the curated channel description for the
// language code, if one exists.
func ChannelDescription(code string) (string, bool) {
	d, ok := channelDescriptions[code]
	return d, ok
}
