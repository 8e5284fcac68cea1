// Package content holds the copy and tables rendered on the landing page.
package content

import "github.com/trexgame/landing/internal/navstate"

// Sections are the page regions the header links to, in page order.
var Sections = []navstate.Section{
	{ID: "features", Anchor: "features", Label: "Features"},
	{ID: "how-it-works", Anchor: "how-it-works", Label: "How It Works"},
	{ID: "community", Anchor: "community", Label: "Community"},
}

// Site is page-level metadata.
type Site struct {
	Name        string
	Title       string
	Tagline     string
	Description string
	Keywords    []string
	Creator     string
	ThemeColor  string
	Locale      string
}

var Meta = Site{
	Name:        "TrexGame",
	Title:       "TrexGame - Web3 Gaming Reimagined",
	Tagline:     "Web3 Gaming Reimagined",
	Description: "Join the thrilling adventure of endless running and NFT evolution in TrexGame.",
	Keywords:    []string{"web3 game", "NFT game", "blockchain gaming", "play to earn", "crypto gaming"},
	Creator:     "@trexgame",
	ThemeColor:  "#f97316",
	Locale:      "en_US",
}

type Stat struct {
	Icon  string
	Value string
	Label string
}

// HeroStats appear under the hero call-to-action buttons.
var HeroStats = []Stat{
	{"lucide--gamepad-2", "50K+", "Active Players"},
	{"lucide--trophy", "1000+", "Tournaments"},
	{"lucide--coins", "$2M+", "Rewards Earned"},
}

type Feature struct {
	Icon        string
	Title       string
	Description string
	Stat        Stat
	Gradient    string
}

var Features = []Feature{
	{
		Icon:        "lucide--gamepad-2",
		Title:       "Endless Running Gameplay",
		Description: "Experience the thrill of non-stop action as you navigate through challenging obstacles and terrains.",
		Stat:        Stat{Value: "1M+", Label: "Players"},
		Gradient:    "from-blue-500 to-indigo-500",
	},
	{
		Icon:        "lucide--dna",
		Title:       "NFT Evolution",
		Description: "Watch your T-Rex grow and evolve as you progress, with unique NFT skins and abilities.",
		Stat:        Stat{Value: "10K+", Label: "NFTs Minted"},
		Gradient:    "from-purple-500 to-pink-500",
	},
	{
		Icon:        "lucide--gem",
		Title:       "Collectibles and Power-ups",
		Description: "Discover rare items and power-ups to enhance your gameplay and boost your scores.",
		Stat:        Stat{Value: "500+", Label: "Unique Items"},
		Gradient:    "from-emerald-500 to-teal-500",
	},
	{
		Icon:        "lucide--trophy",
		Title:       "Multiplayer Competition",
		Description: "Compete against players worldwide in exciting tournaments and leaderboards.",
		Stat:        Stat{Value: "100+", Label: "Daily Tournaments"},
		Gradient:    "from-amber-500 to-orange-500",
	},
	{
		Icon:        "lucide--coins",
		Title:       "Play-to-Earn Rewards",
		Description: "Earn cryptocurrency rewards for your achievements and contributions to the TrexGame ecosystem.",
		Stat:        Stat{Value: "$2M+", Label: "Rewards Paid"},
		Gradient:    "from-red-500 to-rose-500",
	},
	{
		Icon:        "lucide--laptop",
		Title:       "Cross-Platform Play",
		Description: "Enjoy seamless gaming experience across desktop and mobile devices.",
		Stat:        Stat{Value: "3+", Label: "Platforms"},
		Gradient:    "from-cyan-500 to-blue-500",
	},
}

type Step struct {
	Number      int
	Title       string
	Description string
	Icon        string
	Action      string
	Stats       string
	Gradient    string
}

var Steps = []Step{
	{1, "Sign Up", "Create your account and join the TrexGame community.", "lucide--user-plus", "Create Account", "50K+ Players", "from-blue-500 to-indigo-500"},
	{2, "Get Your T-Rex NFT", "Mint your unique T-Rex NFT to start your adventure.", "lucide--trophy", "Mint NFT", "10K+ NFTs", "from-purple-500 to-pink-500"},
	{3, "Join the Adventure", "Enter the game world and start running, collecting, and evolving.", "lucide--gamepad", "Play Now", "1M+ Games", "from-orange-500 to-red-500"},
	{4, "Earn Rewards", "Compete, win, and earn cryptocurrency rewards for your achievements.", "lucide--coins", "View Rewards", "$2M+ Earned", "from-green-500 to-emerald-500"},
}

type SocialLink struct {
	Name        string
	Icon        string
	URL         string
	Members     string
	Description string
	Gradient    string
}

var SocialLinks = []SocialLink{
	{"Twitter", "lucide--twitter", "#", "100K+", "Follow us for the latest updates", "from-blue-400 to-blue-600"},
	{"Instagram", "lucide--instagram", "#", "75K+", "Check out game highlights & events", "from-pink-500 to-rose-500"},
	{"YouTube", "lucide--youtube", "#", "200K+", "Watch gameplay videos & tutorials", "from-red-500 to-red-600"},
}

var CommunityStats = []Stat{
	{"lucide--users", "250K+", "Active Players"},
	{"lucide--message-circle", "1M+", "Daily Messages"},
	{"lucide--globe", "180+", "Countries"},
	{"lucide--trophy", "50K+", "Tournament Players"},
}

type Link struct {
	Label string
	Href  string
}

var LegalLinks = []Link{
	{"Privacy Policy", "#"},
	{"Terms of Service", "#"},
}
