package catalog

// This file is catalog data, not logic: the fixed set of national feeds,
// conference archive pages, and search pseudo-feeds an ingestion run
// visits. Team label sets keep insertion order; downstream labeling relies
// on the last element being the team name.

const newsSelector = `a[href*='/news/']`

// nationalFeeds covers the league-wide syndication feeds.
var nationalFeeds = []Descriptor{
	{Kind: KindFeed, Endpoint: "https://www.espn.com/espn/rss/nfl/news", Origin: "https://www.espn.com", Labels: []string{"ESPN", "NFL"}},
	{Kind: KindFeed, Endpoint: "https://www.espn.com/espn/rss/ncf/news", Origin: "https://www.espn.com", Labels: []string{"ESPN", "CFB"}},
	{Kind: KindFeed, Endpoint: "https://sports.yahoo.com/nfl/rss.xml", Origin: "https://sports.yahoo.com", Labels: []string{"Yahoo", "NFL"}},
	{Kind: KindFeed, Endpoint: "https://sports.yahoo.com/college-football/rss.xml", Origin: "https://sports.yahoo.com", Labels: []string{"Yahoo", "CFB"}},
	{Kind: KindFeed, Endpoint: "https://www.cbssports.com/rss/headlines/nfl/", Origin: "https://www.cbssports.com", Labels: []string{"CBS", "NFL"}},
	{Kind: KindFeed, Endpoint: "https://www.cbssports.com/rss/headlines/ncaa-fb/", Origin: "https://www.cbssports.com", Labels: []string{"CBS", "CFB"}},
	{Kind: KindFeed, Endpoint: "https://www.reddit.com/r/CFB/.rss", Origin: "https://www.reddit.com", Labels: []string{"Reddit", "CFB"}},
	{Kind: KindFeed, Endpoint: "https://www.reddit.com/r/fantasyfootball/.rss", Origin: "https://www.reddit.com", Labels: []string{"Reddit", "Fantasy", "NFL"}},
	{Kind: KindFeed, Endpoint: "https://www.reddit.com/r/CollegeFantasyFootball/.rss", Origin: "https://www.reddit.com", Labels: []string{"Reddit", "Fantasy", "CFB"}},
	{Kind: KindFeed, Endpoint: "https://floridagators.com/rss.aspx?path=football", Origin: "https://floridagators.com", Labels: []string{"TEAM", "Florida"}},
}

// nflTeams maps every NFL club to its Google News query. The sites
// themselves stopped exposing reliable RSS, so coverage comes through
// search pseudo-feeds.
var nflTeams = []string{
	"Arizona Cardinals", "Atlanta Falcons", "Baltimore Ravens", "Buffalo Bills",
	"Carolina Panthers", "Chicago Bears", "Cincinnati Bengals", "Cleveland Browns",
	"Dallas Cowboys", "Denver Broncos", "Detroit Lions", "Green Bay Packers",
	"Houston Texans", "Indianapolis Colts", "Jacksonville Jaguars", "Kansas City Chiefs",
	"Las Vegas Raiders", "Los Angeles Chargers", "Los Angeles Rams", "Miami Dolphins",
	"Minnesota Vikings", "New England Patriots", "New Orleans Saints", "New York Giants",
	"New York Jets", "Philadelphia Eagles", "Pittsburgh Steelers", "San Francisco 49ers",
	"Seattle Seahawks", "Tampa Bay Buccaneers", "Tennessee Titans", "Washington Commanders",
}

// secArchives are the SEC school listing pages, all carrying explicit
// selectors. Arkansas runs a WordPress site rather than Sidearm, hence the
// broader selector.
var secArchives = []Descriptor{
	{Kind: KindArchive, Endpoint: "https://lsusports.net/sports/fb/news/", Origin: "https://lsusports.net", LinkSelector: newsSelector, Labels: []string{"TEAM", "LSU"}},
	{Kind: KindArchive, Endpoint: "https://rolltide.com/sports/football/archives", Origin: "https://rolltide.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Alabama"}},
	{Kind: KindArchive, Endpoint: "https://georgiadogs.com/sports/football/archives", Origin: "https://georgiadogs.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Georgia"}},
	{Kind: KindArchive, Endpoint: "https://gamecocksonline.com/sports/football/news/", Origin: "https://gamecocksonline.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "South Carolina"}},
	{Kind: KindArchive, Endpoint: "https://arkansasrazorbacks.com/sport/m-footbl/", Origin: "https://arkansasrazorbacks.com", LinkSelector: "main a[href]", Labels: []string{"TEAM", "Arkansas"}},
	{Kind: KindArchive, Endpoint: "https://auburntigers.com/sports/football/news", Origin: "https://auburntigers.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Auburn"}},
	{Kind: KindArchive, Endpoint: "https://12thman.com/sports/football/news", Origin: "https://12thman.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Texas A&M"}},
	{Kind: KindArchive, Endpoint: "https://olemisssports.com/sports/football/news", Origin: "https://olemisssports.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Ole Miss"}},
	{Kind: KindArchive, Endpoint: "https://hailstate.com/sports/football/news", Origin: "https://hailstate.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Mississippi State"}},
	{Kind: KindArchive, Endpoint: "https://mutigers.com/sports/football/news", Origin: "https://mutigers.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Missouri"}},
	{Kind: KindArchive, Endpoint: "https://ukathletics.com/sports/football/news", Origin: "https://ukathletics.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Kentucky"}},
	{Kind: KindArchive, Endpoint: "https://utsports.com/sports/football/news", Origin: "https://utsports.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Tennessee"}},
	{Kind: KindArchive, Endpoint: "https://vucommodores.com/sports/football/news", Origin: "https://vucommodores.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Vanderbilt"}},
}

// bigTenArchives covers the legacy Big Ten plus the 2024 expansion schools.
var bigTenArchives = []Descriptor{
	{Kind: KindArchive, Endpoint: "https://mgoblue.com/sports/football", Origin: "https://mgoblue.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Michigan"}},
	{Kind: KindArchive, Endpoint: "https://ohiostatebuckeyes.com/sports/football", Origin: "https://ohiostatebuckeyes.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Ohio State"}},
	{Kind: KindArchive, Endpoint: "https://gopsusports.com/sports/football", Origin: "https://gopsusports.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Penn State"}},
	{Kind: KindArchive, Endpoint: "https://uwbadgers.com/sports/football", Origin: "https://uwbadgers.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Wisconsin"}},
	{Kind: KindArchive, Endpoint: "https://hawkeyesports.com/sports/football", Origin: "https://hawkeyesports.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Iowa"}},
	{Kind: KindArchive, Endpoint: "https://msuspartans.com/sports/football", Origin: "https://msuspartans.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Michigan State"}},
	{Kind: KindArchive, Endpoint: "https://gophersports.com/sports/football", Origin: "https://gophersports.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Minnesota"}},
	{Kind: KindArchive, Endpoint: "https://fightingillini.com/sports/football", Origin: "https://fightingillini.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Illinois"}},
	{Kind: KindArchive, Endpoint: "https://iuhoosiers.com/sports/football", Origin: "https://iuhoosiers.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Indiana"}},
	{Kind: KindArchive, Endpoint: "https://purduesports.com/sports/football/news", Origin: "https://purduesports.com", LinkSelector: `a[href*='/sports/football/']`, Labels: []string{"TEAM", "Purdue"}},
	{Kind: KindArchive, Endpoint: "https://nusports.com/sports/football", Origin: "https://nusports.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Northwestern"}},
	{Kind: KindArchive, Endpoint: "https://huskers.com/sports/football", Origin: "https://huskers.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Nebraska"}},
	{Kind: KindArchive, Endpoint: "https://umterps.com/sports/football", Origin: "https://umterps.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Maryland"}},
	{Kind: KindArchive, Endpoint: "https://scarletknights.com/sports/football", Origin: "https://scarletknights.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Rutgers"}},
	{Kind: KindArchive, Endpoint: "https://goducks.com/sports/football", Origin: "https://goducks.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Oregon"}},
	{Kind: KindArchive, Endpoint: "https://gohuskies.com/sports/football", Origin: "https://gohuskies.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "Washington"}},
	{Kind: KindArchive, Endpoint: "https://usctrojans.com/sports/football", Origin: "https://usctrojans.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "USC"}},
	{Kind: KindArchive, Endpoint: "https://uclabruins.com/sports/football", Origin: "https://uclabruins.com", LinkSelector: newsSelector, Labels: []string{"TEAM", "UCLA"}},
}

// Short-form archive descriptors: endpoint, origin, and labels only. These
// all target Sidearm news pages, so the adapter's default selector and deny
// list apply.

var bigTwelveArchives = []Descriptor{
	{Kind: KindArchive, Endpoint: "https://texassports.com/sports/football/news", Origin: "https://texassports.com", Labels: []string{"TEAM", "Texas"}},
	{Kind: KindArchive, Endpoint: "https://baylorbears.com/sports/football/news", Origin: "https://baylorbears.com", Labels: []string{"TEAM", "Baylor"}},
	{Kind: KindArchive, Endpoint: "https://okstate.com/sports/football/news", Origin: "https://okstate.com", Labels: []string{"TEAM", "Oklahoma State"}},
	{Kind: KindArchive, Endpoint: "https://gofrogs.com/sports/football/news", Origin: "https://gofrogs.com", Labels: []string{"TEAM", "TCU"}},
	{Kind: KindArchive, Endpoint: "https://texastech.com/sports/football/news", Origin: "https://texastech.com", Labels: []string{"TEAM", "Texas Tech"}},
	{Kind: KindArchive, Endpoint: "https://kuathletics.com/sports/football/news", Origin: "https://kuathletics.com", Labels: []string{"TEAM", "Kansas"}},
	{Kind: KindArchive, Endpoint: "https://kstatesports.com/sports/football/news", Origin: "https://kstatesports.com", Labels: []string{"TEAM", "Kansas State"}},
	{Kind: KindArchive, Endpoint: "https://cyclones.com/sports/football/news", Origin: "https://cyclones.com", Labels: []string{"TEAM", "Iowa State"}},
	{Kind: KindArchive, Endpoint: "https://ucfknights.com/sports/football/news", Origin: "https://ucfknights.com", Labels: []string{"TEAM", "UCF"}},
	{Kind: KindArchive, Endpoint: "https://uhcougars.com/sports/football/news", Origin: "https://uhcougars.com", Labels: []string{"TEAM", "Houston"}},
	{Kind: KindArchive, Endpoint: "https://byucougars.com/sports/football/news", Origin: "https://byucougars.com", Labels: []string{"TEAM", "BYU"}},
	{Kind: KindArchive, Endpoint: "https://gobearcats.com/sports/football/news", Origin: "https://gobearcats.com", Labels: []string{"TEAM", "Cincinnati"}},
}

var accArchives = []Descriptor{
	{Kind: KindArchive, Endpoint: "https://clemsontigers.com/sports/football/news", Origin: "https://clemsontigers.com", Labels: []string{"TEAM", "Clemson"}},
	{Kind: KindArchive, Endpoint: "https://seminoles.com/sports/football/news", Origin: "https://seminoles.com", Labels: []string{"TEAM", "Florida State"}},
	{Kind: KindArchive, Endpoint: "https://miamihurricanes.com/sports/football/news", Origin: "https://miamihurricanes.com", Labels: []string{"TEAM", "Miami"}},
	{Kind: KindArchive, Endpoint: "https://goheels.com/sports/football/news", Origin: "https://goheels.com", Labels: []string{"TEAM", "North Carolina"}},
	{Kind: KindArchive, Endpoint: "https://gopack.com/sports/football/news", Origin: "https://gopack.com", Labels: []string{"TEAM", "NC State"}},
	{Kind: KindArchive, Endpoint: "https://goduke.com/sports/football/news", Origin: "https://goduke.com", Labels: []string{"TEAM", "Duke"}},
	{Kind: KindArchive, Endpoint: "https://virginiasports.com/sports/football/news", Origin: "https://virginiasports.com", Labels: []string{"TEAM", "Virginia"}},
	{Kind: KindArchive, Endpoint: "https://hokiesports.com/sports/football/news", Origin: "https://hokiesports.com", Labels: []string{"TEAM", "Virginia Tech"}},
	{Kind: KindArchive, Endpoint: "https://ramblinwreck.com/sports/football/news", Origin: "https://ramblinwreck.com", Labels: []string{"TEAM", "Georgia Tech"}},
	{Kind: KindArchive, Endpoint: "https://gocards.com/sports/football/news", Origin: "https://gocards.com", Labels: []string{"TEAM", "Louisville"}},
	{Kind: KindArchive, Endpoint: "https://pittsburghpanthers.com/sports/football/news", Origin: "https://pittsburghpanthers.com", Labels: []string{"TEAM", "Pitt"}},
	{Kind: KindArchive, Endpoint: "https://cuse.com/sports/football/news", Origin: "https://cuse.com", Labels: []string{"TEAM", "Syracuse"}},
	{Kind: KindArchive, Endpoint: "https://bceagles.com/sports/football/news", Origin: "https://bceagles.com", Labels: []string{"TEAM", "Boston College"}},
	{Kind: KindArchive, Endpoint: "https://godeacs.com/sports/football/news", Origin: "https://godeacs.com", Labels: []string{"TEAM", "Wake Forest"}},
	{Kind: KindArchive, Endpoint: "https://calbears.com/sports/football/news", Origin: "https://calbears.com", Labels: []string{"TEAM", "Cal"}},
	{Kind: KindArchive, Endpoint: "https://smumustangs.com/sports/football/news", Origin: "https://smumustangs.com", Labels: []string{"TEAM", "SMU"}},
	{Kind: KindArchive, Endpoint: "https://gostanford.com/sports/football/news", Origin: "https://gostanford.com", Labels: []string{"TEAM", "Stanford"}},
}

var pacArchives = []Descriptor{
	{Kind: KindArchive, Endpoint: "https://arizonawildcats.com/sports/football/news", Origin: "https://arizonawildcats.com", Labels: []string{"TEAM", "Arizona"}},
	{Kind: KindArchive, Endpoint: "https://thesundevils.com/sports/football/news", Origin: "https://thesundevils.com", Labels: []string{"TEAM", "Arizona State"}},
	{Kind: KindArchive, Endpoint: "https://cubuffs.com/sports/football/news", Origin: "https://cubuffs.com", Labels: []string{"TEAM", "Colorado"}},
	{Kind: KindArchive, Endpoint: "https://utahutes.com/sports/football/news", Origin: "https://utahutes.com", Labels: []string{"TEAM", "Utah"}},
	{Kind: KindArchive, Endpoint: "https://osubeavers.com/sports/football/news", Origin: "https://osubeavers.com", Labels: []string{"TEAM", "Oregon State"}},
	{Kind: KindArchive, Endpoint: "https://wsucougars.com/sports/football/news", Origin: "https://wsucougars.com", Labels: []string{"TEAM", "Washington State"}},
}

var mountainWestArchives = []Descriptor{
	{Kind: KindArchive, Endpoint: "https://broncosports.com/sports/football/news", Origin: "https://broncosports.com", Labels: []string{"TEAM", "Boise State"}},
	{Kind: KindArchive, Endpoint: "https://themw.com/sports/football/news", Origin: "https://themw.com", Labels: []string{"LEAGUE", "Mountain West"}},
	{Kind: KindArchive, Endpoint: "https://golobos.com/sports/football/news", Origin: "https://golobos.com", Labels: []string{"TEAM", "New Mexico"}},
	{Kind: KindArchive, Endpoint: "https://unlvrebels.com/sports/football/news", Origin: "https://unlvrebels.com", Labels: []string{"TEAM", "UNLV"}},
	{Kind: KindArchive, Endpoint: "https://goaztecs.com/sports/football/news", Origin: "https://goaztecs.com", Labels: []string{"TEAM", "San Diego State"}},
	{Kind: KindArchive, Endpoint: "https://sjsuspartans.com/sports/football/news", Origin: "https://sjsuspartans.com", Labels: []string{"TEAM", "San Jose State"}},
	{Kind: KindArchive, Endpoint: "https://nevadawolfpack.com/sports/football/news", Origin: "https://nevadawolfpack.com", Labels: []string{"TEAM", "Nevada"}},
	{Kind: KindArchive, Endpoint: "https://goairforcefalcons.com/sports/football/news", Origin: "https://goairforcefalcons.com", Labels: []string{"TEAM", "Air Force"}},
	{Kind: KindArchive, Endpoint: "https://csurams.com/sports/football/news", Origin: "https://csurams.com", Labels: []string{"TEAM", "Colorado State"}},
	{Kind: KindArchive, Endpoint: "https://gowyo.com/sports/football/news", Origin: "https://gowyo.com", Labels: []string{"TEAM", "Wyoming"}},
	{Kind: KindArchive, Endpoint: "https://utahstateaggies.com/sports/football/news", Origin: "https://utahstateaggies.com", Labels: []string{"TEAM", "Utah State"}},
	{Kind: KindArchive, Endpoint: "https://fresnostatebulldogs.com/sports/football/news", Origin: "https://fresnostatebulldogs.com", Labels: []string{"TEAM", "Fresno State"}},
	{Kind: KindArchive, Endpoint: "https://hawaiiathletics.com/sports/football/news", Origin: "https://hawaiiathletics.com", Labels: []string{"TEAM", "Hawai'i"}},
}

// collegeTeams are the college programs covered through Google News
// pseudo-feeds in addition to their archive pages.
var collegeTeams = []struct {
	query string
	label string
}{
	{"Alabama Crimson Tide football", "TEAM Alabama"},
	{"Georgia Bulldogs football", "TEAM Georgia"},
	{"LSU Tigers football", "TEAM LSU"},
	{"South Carolina Gamecocks football", "TEAM South Carolina"},
	{"Florida Gators football", "TEAM Florida"},
	{"Arkansas Razorbacks football", "TEAM Arkansas"},
	{"Auburn Tigers football", "TEAM Auburn"},
	{"Ole Miss Rebels football", "TEAM Ole Miss"},
	{"Mississippi State Bulldogs football", "TEAM Mississippi State"},
	{"Tennessee Volunteers football", "TEAM Tennessee"},
	{"Kentucky Wildcats football", "TEAM Kentucky"},
	{"Vanderbilt Commodores football", "TEAM Vanderbilt"},
	{"Missouri Tigers football", "TEAM Missouri"},
	{"Texas Longhorns football", "TEAM Texas"},
	{"Oklahoma Sooners football", "TEAM Oklahoma"},
	{"Michigan Wolverines football", "TEAM Michigan"},
	{"Ohio State Buckeyes football", "TEAM Ohio State"},
	{"Penn State Nittany Lions football", "TEAM Penn State"},
	{"Wisconsin Badgers football", "TEAM Wisconsin"},
	{"Iowa Hawkeyes football", "TEAM Iowa"},
	{"Minnesota Golden Gophers football", "TEAM Minnesota"},
	{"Nebraska Cornhuskers football", "TEAM Nebraska"},
	{"Illinois Fighting Illini football", "TEAM Illinois"},
	{"Indiana Hoosiers football", "TEAM Indiana"},
	{"Michigan State Spartans football", "TEAM Michigan State"},
	{"Northwestern Wildcats football", "TEAM Northwestern"},
	{"Maryland Terrapins football", "TEAM Maryland"},
	{"Rutgers Scarlet Knights football", "TEAM Rutgers"},
	{"USC Trojans football", "TEAM USC"},
	{"UCLA Bruins football", "TEAM UCLA"},
	{"Oregon Ducks football", "TEAM Oregon"},
	{"Washington Huskies football", "TEAM Washington"},
}

// fantasyAndBettingQueries are site-scoped Google News searches for the
// fantasy and betting verticals.
var fantasyAndBettingQueries = []struct {
	query string
	label string
}{
	{`site:nbcsports.com "fantasy football" OR "NBC Sports Edge"`, "Fantasy NFL"},
	{`site:rotowire.com NFL fantasy news`, "Fantasy NFL"},
	{`site:fantasypros.com NFL player news`, "Fantasy NFL"},
	{`site:profootballtalk.nbcsports.com injury OR questionable OR doubtful`, "Fantasy NFL"},
	{`site:espn.com "fantasy football" news`, "Fantasy NFL"},
	{`site:underdognetwork.com NFL news OR injuries`, "Fantasy NFL"},
	{`site:actionnetwork.com NFL odds OR picks OR props`, "Betting NFL"},
	{`site:covers.com NFL injuries OR odds OR picks`, "Betting NFL"},
	{`site:oddsshark.com NFL odds OR props`, "Betting NFL"},
	{`site:vegasinsider.com NFL odds OR injuries`, "Betting NFL"},
	{`site:rotogrinders.com NFL news OR projections`, "Betting NFL"},
	{`site:rotowire.com college football fantasy`, "Fantasy CFB"},
	{`site:fantasypros.com college football`, "Fantasy CFB"},
	{`site:nbcsports.com college football fantasy`, "Fantasy CFB"},
	{`site:actionnetwork.com college football odds OR picks OR props`, "Betting CFB"},
	{`site:covers.com college football injuries OR odds OR picks`, "Betting CFB"},
	{`site:oddsshark.com college football odds OR props`, "Betting CFB"},
	{`site:vegasinsider.com college football odds OR injuries`, "Betting CFB"},
}

// Builtin returns the full compiled-in catalog, normalized. The slice is
// freshly allocated on every call; callers may append file-loaded
// descriptors to it.
func Builtin() []Descriptor {
	var out []Descriptor

	out = append(out, nationalFeeds...)
	out = append(out, secArchives...)
	out = append(out, bigTenArchives...)
	out = append(out, bigTwelveArchives...)
	out = append(out, accArchives...)
	out = append(out, pacArchives...)
	out = append(out, mountainWestArchives...)

	for _, team := range nflTeams {
		out = append(out, GoogleNewsFeed(team+" football", "TEAM "+shortTeamName(team)))
	}

	for _, college := range collegeTeams {
		out = append(out, GoogleNewsFeed(college.query, college.label))
	}

	for _, q := range fantasyAndBettingQueries {
		out = append(out, GoogleNewsFeed(q.query, q.label))
	}

	for i := range out {
		// Builtin data always carries an explicit origin; Normalize is
		// still run so the invariant holds in one place.
		_ = out[i].Normalize()
	}

	return out
}

// shortTeamName reduces an NFL club name to its nickname, the last word of
// the full name ("Kansas City Chiefs" -> "Chiefs").
func shortTeamName(full string) string {
	idx := len(full)
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ' ' {
			idx = i
			break
		}
	}

	if idx == len(full) {
		return full
	}

	return full[idx+1:]
}
