package decode

// Columns is the fixed order of the decoded output. Downstream consumers
// address the file positionally as well as by header, so the sequence must
// never change.
var Columns = []string{
	"Institution",
	"County",
	"CourtCommittedByName",
	"Crime",
	"CrimeAttemptedLabel",
	"DateOfBirth",
	"DateReceived",
	"MinSentenceLabel",
	"MaxSentenceLabel",
	"AgeAtCommitment",
	"RaceName",
	"ReligionName",
	"SexName",
	"IdentifierNumber",
	"CheckDigit",
	"YearsResidenceNY",
	"MilitaryServiceLabel",
	"EducationLevel",
	"OccupationName",
	"NarcoticsUseLabel",
	"MaritalStatusName",
	"PrevCriminalRecordLabel",
	"CountryOfBirthName",
	"YearEnteredUSNum",
	"NaturalizationStatusLabel",
	"PsychiatricClassificationLabel",
	"InstitutionOriginalName",
	"OriginalMonthYear",
	"MentalHygieneIDNum",
	"ReturnTypeLabel",
	"LatestReleaseDate",
	"LatestReturnDate",
	"CurrentInstitutionName",
}
