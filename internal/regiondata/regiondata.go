// Package regiondata embeds a serialized address-metadata snapshot for a
// set of regions, in the same wire form the metadata host serves. It backs
// offline lookups and prefetch seeding.
package regiondata

import "strings"

// Map returns the embedded key→blob dataset. The returned map is shared
// and must be treated as read-only.
func Map() map[string]string {
	return data
}

// Countries lists the region codes present in the embedded index.
func Countries() []string {
	return strings.Split(countries, "~")
}

const countries = "AU~BR~CA~CH~CN~DE~FR~GB~JP~KZ~MX~NL~US"

var data = map[string]string{
	"data": `{"id":"data","countries":"` + countries + `"}`,

	"data/AU": `{"id":"data/AU","key":"AU","name":"AUSTRALIA","fmt":"%O%n%N%n%A%n%C %S %Z","require":"ACSZ","upper":"CS","zip":"\\d{4}","zipex":"2060,3171,6430","lang":"en","languages":"en","sub_keys":"ACT~NSW~NT~QLD~SA~TAS~VIC~WA","sub_names":"Australian Capital Territory~New South Wales~Northern Territory~Queensland~South Australia~Tasmania~Victoria~Western Australia"}`,

	"data/BR": `{"id":"data/BR","key":"BR","name":"BRAZIL","fmt":"%O%n%N%n%A%n%D%n%C-%S%n%Z","require":"ASCZ","upper":"CS","zip":"\\d{5}-?\\d{3}","zipex":"40301-110,70002-900","lang":"pt","languages":"pt"}`,

	"data/CA": `{"id":"data/CA","key":"CA","name":"CANADA","fmt":"%N%n%O%n%A%n%C %S %Z","require":"ACSZ","upper":"ACNOSZ","zip":"[ABCEGHJKLMNPRSTVXY]\\d[ABCEGHJ-NPRSTV-Z] ?\\d[ABCEGHJ-NPRSTV-Z]\\d","zipex":"H3Z 2Y7,V8X 3X4","lang":"en","languages":"en~fr","sub_keys":"AB~BC~MB~NB~NL~NT~NS~NU~ON~PE~QC~SK~YT","sub_names":"Alberta~British Columbia~Manitoba~New Brunswick~Newfoundland and Labrador~Northwest Territories~Nova Scotia~Nunavut~Ontario~Prince Edward Island~Quebec~Saskatchewan~Yukon"}`,

	"data/CA--fr": `{"id":"data/CA--fr","key":"CA","name":"CANADA","fmt":"%N%n%O%n%A%n%C %S %Z","require":"ACSZ","upper":"ACNOSZ","zip":"[ABCEGHJKLMNPRSTVXY]\\d[ABCEGHJ-NPRSTV-Z] ?\\d[ABCEGHJ-NPRSTV-Z]\\d","zipex":"H3Z 2Y7,V8X 3X4","lang":"fr","languages":"en~fr","sub_keys":"AB~BC~PE~MB~NB~NS~NU~ON~QC~SK~NL~NT~YT","sub_names":"Alberta~Colombie-Britannique~Île-du-Prince-Édouard~Manitoba~Nouveau-Brunswick~Nouvelle-Écosse~Nunavut~Ontario~Québec~Saskatchewan~Terre-Neuve-et-Labrador~Territoires du Nord-Ouest~Yukon"}`,

	"data/CA/BC": `{"id":"data/CA/BC","key":"BC","name":"British Columbia","zip":"V","lang":"en"}`,
	"data/CA/QC": `{"id":"data/CA/QC","key":"QC","name":"Quebec","zip":"[GHJ]","lang":"en"}`,

	"data/CH": `{"id":"data/CH","key":"CH","name":"SWITZERLAND","fmt":"%O%n%N%n%A%nCH-%Z %C","require":"ACZ","upper":"","zip":"\\d{4}","zipex":"2544,1211,8005","lang":"de","languages":"de~fr~it"}`,

	"data/CN": `{"id":"data/CN","key":"CN","name":"CHINA","fmt":"%Z%n%S%C%D%n%A%n%O%n%N","require":"ACSZ","upper":"S","zip":"\\d{6}","zipex":"266033,317204,100096","lang":"zh","languages":"zh"}`,

	"data/DE": `{"id":"data/DE","key":"DE","name":"GERMANY","fmt":"%N%n%O%n%A%n%Z %C","require":"ACZ","zip":"\\d{5}","zipex":"26133,53225","lang":"de","languages":"de"}`,

	"data/FR": `{"id":"data/FR","key":"FR","name":"FRANCE","fmt":"%O%n%N%n%A%n%Z %C","require":"ACZ","upper":"CX","zip":"\\d{2} ?\\d{3}","zipex":"33380,34092,33506","lang":"fr","languages":"fr"}`,

	"data/GB": `{"id":"data/GB","key":"GB","name":"UNITED KINGDOM","fmt":"%N%n%O%n%A%n%C%n%Z","require":"ACZ","upper":"CZ","zip":"GIR ?0AA|(?:(?:[A-PR-UWYZ][0-9]{1,2}|[A-PR-UWYZ][A-HK-Y][0-9]{1,2}|[A-PR-UWYZ][0-9][A-HJKSTUW]|[A-PR-UWYZ][A-HK-Y][0-9][ABEHMNPRV-Y]) ?[0-9][ABD-HJLNP-UW-Z]{2})","zipex":"EC1Y 8SY,GIR 0AA","lang":"en","languages":"en"}`,

	"data/JP": `{"id":"data/JP","key":"JP","name":"JAPAN","fmt":"〒%Z%n%S%n%A%n%O%n%N","require":"ASZ","upper":"S","zip":"\\d{3}-?\\d{4}","zipex":"154-0023,350-1106","lang":"ja","languages":"ja"}`,

	"data/KZ": `{"id":"data/KZ","key":"KZ","name":"KAZAKHSTAN","fmt":"%Z%n%S%n%C%n%A%n%O%n%N","require":"ACZ","zip":"\\d{6}","zipex":"040900,050012","lang":"ru","languages":"ru~kk"}`,

	"data/MX": `{"id":"data/MX","key":"MX","name":"MEXICO","fmt":"%N%n%O%n%A%n%D%n%Z %C, %S","require":"ACZ","upper":"CSZ","zip":"\\d{5}","zipex":"02860,77520,06082","lang":"es","languages":"es"}`,

	"data/NL": `{"id":"data/NL","key":"NL","name":"NETHERLANDS","fmt":"%O%n%N%n%A%n%Z %C","require":"ACZ","upper":"","zip":"\\d{4} ?[A-Z]{2}","zipex":"1234 AB,2490 AA","lang":"nl","languages":"nl"}`,

	"data/US": `{"id":"data/US","key":"US","name":"UNITED STATES","fmt":"%N%n%O%n%A%n%C, %S %Z","require":"ACSZ","upper":"CS","zip":"(\\d{5})(?:[ \\-](\\d{4}))?","zipex":"95014,22162-1010","lang":"en","languages":"en","sub_keys":"AL~AK~AZ~AR~CA~CO~CT~DE~DC~FL~GA~HI~ID~IL~IN~IA~KS~KY~LA~ME~MD~MA~MI~MN~MS~MO~MT~NE~NV~NH~NJ~NM~NY~NC~ND~OH~OK~OR~PA~RI~SC~SD~TN~TX~UT~VT~VA~WA~WV~WI~WY"}`,

	"data/US/CA": `{"id":"data/US/CA","key":"CA","name":"California","zip":"9[0-5]|96[01]","zipex":"90000,96199","lang":"en"}`,
	"data/US/NY": `{"id":"data/US/NY","key":"NY","name":"New York","zip":"1[0-4]|00[68]|544","zipex":"10001,14925","lang":"en"}`,
	"data/US/WA": `{"id":"data/US/WA","key":"WA","name":"Washington","zip":"98|99[0-4]","zipex":"98001,99403","lang":"en"}`,
}
