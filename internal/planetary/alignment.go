package planetary

import "github.com/zaibaitech/asrar-sub000/internal/domain"

type pair struct {
	user domain.Element
	hour domain.Element
}

// alignmentTable is ordered (user, hour); (a, b) and (b, a) may differ.
var alignmentTable = map[pair]domain.AlignmentQuality{
	{domain.ElementFire, domain.ElementFire}:   domain.QualityPerfect,
	{domain.ElementFire, domain.ElementWater}:  domain.QualityOpposing,
	{domain.ElementFire, domain.ElementAir}:    domain.QualityStrong,
	{domain.ElementFire, domain.ElementEarth}:  domain.QualityModerate,
	{domain.ElementWater, domain.ElementFire}:  domain.QualityOpposing,
	{domain.ElementWater, domain.ElementWater}: domain.QualityPerfect,
	{domain.ElementWater, domain.ElementAir}:   domain.QualityWeak,
	{domain.ElementWater, domain.ElementEarth}: domain.QualityStrong,
	{domain.ElementAir, domain.ElementFire}:    domain.QualityStrong,
	{domain.ElementAir, domain.ElementWater}:   domain.QualityModerate,
	{domain.ElementAir, domain.ElementAir}:     domain.QualityPerfect,
	{domain.ElementAir, domain.ElementEarth}:   domain.QualityOpposing,
	{domain.ElementEarth, domain.ElementFire}:  domain.QualityWeak,
	{domain.ElementEarth, domain.ElementWater}: domain.QualityStrong,
	{domain.ElementEarth, domain.ElementAir}:   domain.QualityOpposing,
	{domain.ElementEarth, domain.ElementEarth}: domain.QualityPerfect,
}

type tier struct {
	score     int
	desc      string
	localized string
}

var tiers = map[domain.AlignmentQuality]tier{
	domain.QualityPerfect:  {100, "Perfect alignment: the hour shares your element", "توافق تام"},
	domain.QualityStrong:   {80, "Strong harmony: the hour's element supports yours", "انسجام قوي"},
	domain.QualityModerate: {60, "Moderate: a neutral hour for your element", "توافق معتدل"},
	domain.QualityWeak:     {40, "Weak: the hour's element drains yours", "توافق ضعيف"},
	domain.QualityOpposing: {20, "Opposing: the hour's element works against yours", "تعارض"},
}

// unknownScore is used when either element is outside the table.
const unknownScore = 50

// Align scores the hour's element against the user's element.
func Align(user, hour domain.Element) domain.ElementAlignment {
	q, ok := alignmentTable[pair{user, hour}]
	if !ok {
		t := tiers[domain.QualityModerate]
		return domain.ElementAlignment{
			Quality:              domain.QualityModerate,
			Description:          t.desc,
			LocalizedDescription: t.localized,
			HarmonyScore:         unknownScore,
		}
	}
	t := tiers[q]
	return domain.ElementAlignment{
		Quality:              q,
		Description:          t.desc,
		LocalizedDescription: t.localized,
		HarmonyScore:         t.score,
	}
}
