package services

// Theme names as offered to the UI.
const (
	ThemeProfessionalClassic = "Professional Classic"
	ThemeModernMinimalist    = "Modern Minimalist"
	ThemeNetflixStyle        = "Netflix Style"
	ThemeAmazonStyle         = "Amazon Style"
	ThemeCreativePortfolio   = "Creative Portfolio"
	ThemeTechProfessional    = "Tech Professional"
)

type ThemeService interface {
	ThemeOptions() []string
	SystemPrompt(theme string) string
	IsValidTheme(theme string) bool
}

type themeService struct{}

func NewThemeService() ThemeService {
	return &themeService{}
}

const themeBasePrompt = "You are an expert web developer specializing in creating professional portfolio websites. " +
	"Generate complete, responsive HTML and CSS for a portfolio website that showcases a person's " +
	"professional experience, skills, education, and projects. Your code must be modern, visually " +
	"appealing, and follow best practices. Include all HTML, CSS, and JavaScript in a single file."

const themeAccessibilityPrompt = "Ensure the website is accessible following WCAG guidelines. Use semantic HTML, " +
	"provide alt text for images, ensure sufficient color contrast, and make sure the site " +
	"is keyboard navigable. The website must be fully responsive and work well on mobile devices."

const themeOutputPrompt = "Your output must be a complete, ready-to-use HTML file that includes all CSS and JavaScript. " +
	"Design the portfolio for a standard web developer, incorporating the person's information " +
	"from their resume in a sensible way. Create a professional, aesthetically pleasing result " +
	"that highlights their skills and experience."

var themeInstructions = map[string]string{
	ThemeProfessionalClassic: "Create a classic, professional portfolio with a clean, corporate aesthetic. Use navy blue, " +
		"white, and gray as the primary colors. The layout should be straightforward with clear sections " +
		"and conservative styling suitable for traditional industries like finance, law, or consulting.",
	ThemeModernMinimalist: "Design a minimalist portfolio with ample white space, subtle animations, and a focus on " +
		"typography. Use a monochromatic color scheme with one accent color. The layout should be " +
		"grid-based with asymmetrical elements for visual interest.",
	ThemeNetflixStyle: "Create a Netflix-inspired dark theme with a black background, red accents (Netflix red), and " +
		"card-based content layout. Use a horizontal scrolling mechanism for project showcases. " +
		"Include subtle hover effects and transitions similar to the Netflix UI.",
	ThemeAmazonStyle: "Design an Amazon-inspired layout with a light background, Amazon blue accents, and a " +
		"user-friendly, information-rich design. Include clearly defined sections with card-based " +
		"elements, rating-style skill indicators, and a navigation bar similar to Amazon's interface.",
	ThemeCreativePortfolio: "Create an artistic portfolio with bold colors, unusual layouts, and creative elements. " +
		"Use animations, gradients, and artistic typography. The design should be unconventional " +
		"yet functional, suitable for creative professionals.",
	ThemeTechProfessional: "Design a tech-focused portfolio with a dark mode aesthetic, code-like elements, and tech-inspired " +
		"visuals. Use a terminal/code editor inspired color scheme (dark background with bright syntax " +
		"highlighting colors). Include coding-inspired animations and tech iconography.",
}

// ThemeOptions implements ThemeService.
func (t *themeService) ThemeOptions() []string {
	return []string{
		ThemeProfessionalClassic,
		ThemeModernMinimalist,
		ThemeNetflixStyle,
		ThemeAmazonStyle,
		ThemeCreativePortfolio,
		ThemeTechProfessional,
	}
}

// SystemPrompt implements ThemeService. Unknown themes get the Professional
// Classic instructions.
func (t *themeService) SystemPrompt(theme string) string {
	instructions, ok := themeInstructions[theme]
	if !ok {
		instructions = themeInstructions[ThemeProfessionalClassic]
	}

	return themeBasePrompt + " " + instructions + " " + themeAccessibilityPrompt + " " + themeOutputPrompt
}

// IsValidTheme implements ThemeService.
func (t *themeService) IsValidTheme(theme string) bool {
	_, ok := themeInstructions[theme]
	return ok
}
