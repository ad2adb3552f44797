// Package reference serves the static reference content shown to creators:
// government support schemes and business guidance tips. The content is
// compiled in; it changes with releases, not at runtime.
package reference

// Scheme is a government support scheme a creator may apply to.
type Scheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Benefits    string `json:"benefits"`
	Link        string `json:"link"`
}

// GuidanceTip is a short business-guidance article.
type GuidanceTip struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Icon     string `json:"icon"`
}

var schemes = []Scheme{
	{
		ID:          "1",
		Name:        "Mudra Loan Scheme",
		Type:        "Loan",
		Description: "Micro-finance loans up to ₹10 lakh for small businesses without collateral.",
		Eligibility: "Women entrepreneurs with a viable business plan",
		Benefits:    "Loans from ₹50,000 to ₹10,00,000 at subsidized interest rates",
		Link:        "#",
	},
	{
		ID:          "2",
		Name:        "Stand-Up India",
		Type:        "Subsidy",
		Description: "Bank loans between ₹10 lakh and ₹1 crore for SC/ST and women entrepreneurs.",
		Eligibility: "Women setting up a greenfield enterprise in manufacturing, services, or trading",
		Benefits:    "Composite loan covering term loan and working capital",
		Link:        "#",
	},
	{
		ID:          "3",
		Name:        "PMEGP",
		Type:        "Grant",
		Description: "Prime Minister's Employment Generation Programme for micro enterprises.",
		Eligibility: "Women above 18 with projects up to ₹25 lakh (manufacturing)",
		Benefits:    "25-35% subsidy on project cost for women beneficiaries",
		Link:        "#",
	},
	{
		ID:          "4",
		Name:        "Mahila Udyam Nidhi",
		Type:        "Loan",
		Description: "Special fund for women to set up new small-scale ventures.",
		Eligibility: "Women entrepreneurs in small-scale industries",
		Benefits:    "Soft loans up to ₹10 lakh with extended repayment period",
		Link:        "#",
	},
}

var guidanceTips = []GuidanceTip{
	{
		ID:       "1",
		Category: "Getting Started",
		Title:    "Register Your Business",
		Content:  "Start by registering as a sole proprietor or OPC. Apply for GST if turnover exceeds ₹20 lakh. Get an Udyam Registration for MSME benefits.",
		Icon:     "📋",
	},
	{
		ID:       "2",
		Category: "Getting Started",
		Title:    "Create a Business Plan",
		Content:  "Outline your products, target market, pricing strategy, and financial projections. A solid plan helps secure funding and stay focused.",
		Icon:     "📝",
	},
	{
		ID:       "3",
		Category: "Marketing",
		Title:    "Build Your Online Presence",
		Content:  "Create social media profiles on Instagram and Facebook. Share behind-the-scenes content, product stories, and customer testimonials.",
		Icon:     "📱",
	},
	{
		ID:       "4",
		Category: "Marketing",
		Title:    "Product Photography Tips",
		Content:  "Use natural light, clean backgrounds, and multiple angles. Show products in use. Good photos can increase sales by 40%.",
		Icon:     "📸",
	},
	{
		ID:       "5",
		Category: "Finance",
		Title:    "Pricing Your Products",
		Content:  "Calculate material costs + labor + overhead + profit margin (at least 30%). Don't undervalue handmade work. Research competitor pricing.",
		Icon:     "💰",
	},
	{
		ID:       "6",
		Category: "Growth",
		Title:    "Participate in Events",
		Content:  "Craft fairs, exhibitions, and markets are great ways to reach new customers, get feedback, and build your brand presence.",
		Icon:     "🎪",
	},
}

// Schemes returns the scheme catalogue. The returned slice is a copy; callers
// may not mutate the compiled-in content.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)

	return out
}

// GuidanceTips returns all guidance tips, optionally filtered by category.
// An empty category returns everything.
func GuidanceTips(category string) []GuidanceTip {
	out := make([]GuidanceTip, 0, len(guidanceTips))
	for _, tip := range guidanceTips {
		if category == "" || tip.Category == category {
			out = append(out, tip)
		}
	}

	return out
}

// GuidanceCategories returns the distinct tip categories in catalogue order.
func GuidanceCategories() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, tip := range guidanceTips {
		if _, ok := seen[tip.Category]; ok {
			continue
		}
		seen[tip.Category] = struct{}{}
		out = append(out, tip.Category)
	}

	return out
}
