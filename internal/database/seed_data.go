package database

import "github.com/tifyai/website/internal/models"

func seedBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			Title:         "The Future of AI in Financial Planning",
			Slug:          "future-of-ai-financial-planning",
			Excerpt:       "Discover how artificial intelligence is revolutionizing personal finance management and investment strategies for the modern era.",
			Content:       "Artificial intelligence is transforming the financial planning landscape in unprecedented ways. From automated portfolio management to predictive analytics, AI is making sophisticated financial strategies accessible to everyone.\n\nKey developments include:\n\n1. Personalized Investment Recommendations\nAI algorithms can analyze your financial goals, risk tolerance, and market conditions to provide tailored investment advice.\n\n2. Real-time Financial Monitoring\nModern AI systems can track your spending patterns and alert you to potential issues before they become problems.\n\n3. Predictive Analytics\nMachine learning models can forecast market trends and help you make more informed financial decisions.\n\nThe future of financial planning is here, and it's powered by AI.",
			Category:      "Financial Literacy",
			AuthorName:    "Sarah Johnson",
			AuthorImage:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
			FeaturedImage: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
			PublishedDate: "2025-11-10",
			ReadTime:      8,
		},
		{
			Title:         "Raising Tech-Savvy Kids in a Digital World",
			Slug:          "raising-tech-savvy-kids",
			Excerpt:       "Learn effective strategies to guide your children's technology use while fostering healthy digital habits and creativity.",
			Content:       "In today's digital age, raising children requires a new set of parenting skills. Technology is ubiquitous, and rather than fighting it, we need to embrace it thoughtfully.\n\nPractical strategies for digital parenting:\n\n1. Set Clear Boundaries\nEstablish screen time limits and tech-free zones in your home.\n\n2. Lead by Example\nModel healthy technology use through your own behavior.\n\n3. Encourage Creative Use\nHelp children use technology for creation, not just consumption.\n\n4. Maintain Open Communication\nTalk regularly about online experiences and digital citizenship.\n\n5. Use Parental Controls Wisely\nImplement age-appropriate monitoring without being overly restrictive.\n\nThe goal is to raise children who can navigate the digital world safely and productively.",
			Category:      "Parenting",
			AuthorName:    "Michael Chen",
			AuthorImage:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			FeaturedImage: "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=800",
			PublishedDate: "2025-11-08",
			ReadTime:      6,
		},
		{
			Title:         "Understanding Cryptocurrency: A Beginner's Guide",
			Slug:          "cryptocurrency-beginners-guide",
			Excerpt:       "Demystifying blockchain, Bitcoin, and the world of digital currencies for those just starting their crypto journey.",
			Content:       "Cryptocurrency has moved from the fringes to mainstream financial discussions. But what exactly is it, and should you invest?\n\nBasic Concepts:\n\n1. Blockchain Technology\nA decentralized ledger that records all transactions across a network.\n\n2. Bitcoin and Altcoins\nBitcoin is the first cryptocurrency, but thousands of alternatives exist.\n\n3. Digital Wallets\nSecure storage for your cryptocurrency holdings.\n\n4. Mining and Validation\nHow new coins are created and transactions are verified.\n\nRisks and Considerations:\n- High volatility\n- Regulatory uncertainty\n- Security concerns\n- Environmental impact\n\nBefore investing in cryptocurrency, educate yourself thoroughly and only invest what you can afford to lose.",
			Category:      "Crypto",
			AuthorName:    "David Martinez",
			AuthorImage:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
			FeaturedImage: "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?w=800",
			PublishedDate: "2025-11-05",
			ReadTime:      10,
		},
		{
			Title:         "Global Economic Trends to Watch in 2025",
			Slug:          "global-economic-trends-2025",
			Excerpt:       "An analysis of macroeconomic indicators and trends that will shape financial markets and business strategies this year.",
			Content:       "As we navigate through 2025, several macroeconomic trends are shaping the global economy.\n\nKey Trends:\n\n1. Interest Rate Normalization\nCentral banks worldwide are adjusting rates in response to inflation dynamics.\n\n2. AI-Driven Productivity\nArtificial intelligence is creating new economic efficiencies across industries.\n\n3. Green Energy Transition\nMassive capital flows into sustainable energy infrastructure.\n\n4. Geopolitical Shifts\nChanging trade relationships and supply chain restructuring.\n\n5. Digital Currency Adoption\nCentral bank digital currencies gaining traction.\n\nWhat this means for you:\n- Diversify investments across asset classes\n- Stay informed about technological disruptions\n- Consider sustainability in investment decisions\n- Monitor inflation and interest rate trends\n\nUnderstanding these macro trends helps position your portfolio for success.",
			Category:      "Macro Economics",
			AuthorName:    "Emma Williams",
			AuthorImage:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
			FeaturedImage: "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800",
			PublishedDate: "2025-11-01",
			ReadTime:      12,
		},
		{
			Title:         "Building Emotional Intelligence in Children",
			Slug:          "building-emotional-intelligence-children",
			Excerpt:       "Practical techniques to help your children develop emotional awareness, empathy, and resilience from an early age.",
			Content:       "Emotional intelligence is one of the most important skills children can develop. It affects their relationships, academic success, and overall well-being.\n\nFive Pillars of Emotional Intelligence:\n\n1. Self-Awareness\nHelp children recognize and name their emotions.\n\n2. Self-Regulation\nTeach coping strategies for managing difficult feelings.\n\n3. Motivation\nEncourage intrinsic motivation and goal-setting.\n\n4. Empathy\nFoster understanding of others' feelings and perspectives.\n\n5. Social Skills\nPractice communication and conflict resolution.\n\nPractical Activities:\n- Emotion charts and feelings vocabulary\n- Role-playing scenarios\n- Mindfulness exercises\n- Reading books about emotions\n- Family discussions about feelings\n\nBy investing in emotional intelligence, you're giving your children tools for lifelong success.",
			Category:      "Parenting",
			AuthorName:    "Lisa Anderson",
			AuthorImage:   "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=400",
			FeaturedImage: "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=800",
			PublishedDate: "2025-10-28",
			ReadTime:      7,
		},
		{
			Title:         "Diversification Strategies for Your Investment Portfolio",
			Slug:          "diversification-strategies-investment-portfolio",
			Excerpt:       "Learn how to protect your wealth by spreading risk across different asset classes, sectors, and geographic regions.",
			Content:       "The old adage 'don't put all your eggs in one basket' is fundamental to investment success. Diversification is your best defense against market volatility.\n\nDiversification Dimensions:\n\n1. Asset Class Diversification\n- Stocks\n- Bonds\n- Real Estate\n- Commodities\n- Cash equivalents\n\n2. Geographic Diversification\nSpread investments across different countries and regions.\n\n3. Sector Diversification\nInvest in various industries to reduce sector-specific risk.\n\n4. Time Diversification\nDollar-cost averaging spreads investments over time.\n\nBuilding Your Diversified Portfolio:\n- Assess your risk tolerance\n- Define investment timeline\n- Rebalance regularly\n- Consider low-cost index funds\n- Don't over-diversify\n\nRemember: diversification doesn't guarantee profits but helps manage risk.",
			Category:      "Financial Literacy",
			AuthorName:    "Robert Kim",
			AuthorImage:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400",
			FeaturedImage: "https://images.unsplash.com/photo-1579621970795-87facc2f976d?w=800",
			PublishedDate: "2025-10-25",
			ReadTime:      9,
		},
	}
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			Title:                 "AI-Powered Financial Planning Masterclass",
			Slug:                  "ai-financial-planning-masterclass",
			Description:           "Master the intersection of artificial intelligence and personal finance management",
			Category:              "Financial Literacy",
			Format:                models.FormatOnlineLive,
			Price:                 1500000,
			Duration:              "8 weeks",
			Thumbnail:             "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600",
			InstructorName:        "Dr. Sarah Johnson",
			InstructorImage:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
			InstructorBio:         "Dr. Johnson is a financial technology expert with over 15 years of experience in AI and fintech innovation.",
			InstructorCredentials: "PhD in Financial Technology, MIT",
			Overview:              "This comprehensive course teaches you how to leverage AI tools for smarter financial planning, investment strategies, and wealth management. You'll learn to use cutting-edge AI platforms to analyze markets, automate portfolio management, and make data-driven financial decisions.",
			LearningPoints: models.StringList{
				"Understanding AI algorithms for financial analysis",
				"Implementing automated portfolio management",
				"Using predictive analytics for investment decisions",
				"Risk assessment with machine learning",
				"Building personalized financial planning systems",
			},
			Modules: models.StringList{
				"Introduction to AI in Finance",
				"Data Analysis and Market Prediction",
				"Automated Trading Systems",
				"Portfolio Optimization Techniques",
				"Risk Management with AI",
				"Personal Finance Automation",
				"Advanced Analytics and Reporting",
				"Final Project: Building Your AI Financial Advisor",
			},
			Popularity: 95,
		},
		{
			Title:                 "Modern Parenting in the Digital Age",
			Slug:                  "modern-parenting-digital-age",
			Description:           "Navigate the challenges of raising children in a technology-driven world",
			Category:              "Parenting",
			Format:                models.FormatOffline,
			Price:                 800000,
			Duration:              "4 weeks",
			Thumbnail:             "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=600",
			InstructorName:        "Michael Chen",
			InstructorImage:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			InstructorBio:         "Michael is a child psychologist and parenting coach specializing in technology and child development.",
			InstructorCredentials: "Licensed Child Psychologist, Parenting Coach",
			Overview:              "Learn evidence-based strategies for raising emotionally intelligent, tech-savvy children. This course covers digital wellness, screen time management, online safety, and fostering creativity in a digital world.",
			LearningPoints: models.StringList{
				"Setting healthy technology boundaries",
				"Teaching digital citizenship",
				"Balancing screen time with real-world activities",
				"Protecting children online",
				"Fostering creativity and critical thinking",
			},
			Modules: models.StringList{
				"Understanding Child Development in Digital Era",
				"Screen Time Guidelines by Age",
				"Online Safety and Privacy",
				"Digital Citizenship Education",
				"Balancing Technology and Play",
				"Managing Gaming and Social Media",
				"Communication Strategies",
				"Building Family Digital Wellness Plans",
			},
			Popularity: 88,
		},
		{
			Title:                 "Cryptocurrency Investment Fundamentals",
			Slug:                  "cryptocurrency-investment-fundamentals",
			Description:           "From blockchain basics to advanced crypto trading strategies",
			Category:              "Crypto",
			Format:                models.FormatRecorded,
			Price:                 0,
			Duration:              "6 weeks",
			Thumbnail:             "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?w=600",
			InstructorName:        "David Martinez",
			InstructorImage:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
			InstructorBio:         "David is a blockchain consultant and crypto investor with expertise in digital asset management.",
			InstructorCredentials: "Certified Blockchain Expert, Financial Analyst",
			Overview:              "This free introductory course demystifies cryptocurrency and blockchain technology. Learn the fundamentals of Bitcoin, Ethereum, and other digital assets, understand blockchain mechanics, and explore investment strategies.",
			LearningPoints: models.StringList{
				"Blockchain technology fundamentals",
				"Major cryptocurrencies and their use cases",
				"Setting up and securing digital wallets",
				"Basic trading strategies",
				"Risk management in crypto investing",
			},
			Modules: models.StringList{
				"Introduction to Blockchain",
				"Bitcoin and Major Cryptocurrencies",
				"Digital Wallets and Security",
				"Exchanges and Trading Platforms",
				"Technical Analysis Basics",
				"Fundamental Analysis of Crypto Projects",
				"DeFi and NFTs Overview",
				"Building Your Crypto Portfolio",
			},
			Popularity: 120,
		},
		{
			Title:                 "Macroeconomics for Investors",
			Slug:                  "macroeconomics-for-investors",
			Description:           "Understand global economic forces that drive investment markets",
			Category:              "Macro Economics",
			Format:                models.FormatOnlineLive,
			Price:                 2000000,
			Duration:              "10 weeks",
			Thumbnail:             "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=600",
			InstructorName:        "Dr. Emma Williams",
			InstructorImage:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
			InstructorBio:         "Dr. Williams is an economist specializing in global markets and investment strategy.",
			InstructorCredentials: "PhD Economics, Harvard University",
			Overview:              "Gain deep insights into macroeconomic indicators, central bank policies, and global economic trends. Learn to interpret economic data and make informed investment decisions based on macro analysis.",
			LearningPoints: models.StringList{
				"Understanding GDP, inflation, and employment data",
				"Central bank policies and monetary systems",
				"Global trade and currency markets",
				"Economic cycles and market timing",
				"Geopolitical factors in investing",
			},
			Modules: models.StringList{
				"Macroeconomic Indicators Overview",
				"Monetary Policy and Central Banking",
				"Fiscal Policy and Government Impact",
				"International Trade and Exchange Rates",
				"Economic Cycles and Business Trends",
				"Inflation and Interest Rate Analysis",
				"Geopolitical Risk Assessment",
				"Global Market Integration",
				"Recession Indicators and Protection",
				"Building Macro-Informed Portfolios",
			},
			Popularity: 72,
		},
		{
			Title:                 "Positive Discipline Techniques",
			Slug:                  "positive-discipline-techniques",
			Description:           "Effective, respectful approaches to guiding children's behavior",
			Category:              "Parenting",
			Format:                models.FormatOffline,
			Price:                 600000,
			Duration:              "3 weeks",
			Thumbnail:             "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=600",
			InstructorName:        "Lisa Anderson",
			InstructorImage:       "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=400",
			InstructorBio:         "Lisa is a certified Positive Discipline trainer and family therapist with 20 years of experience.",
			InstructorCredentials: "Certified Positive Discipline Trainer, LMFT",
			Overview:              "Learn proven techniques for raising responsible, respectful children without punishment or permissiveness. This course teaches the principles of positive discipline, effective communication, and problem-solving skills.",
			LearningPoints: models.StringList{
				"Positive discipline principles and philosophy",
				"Effective communication with children",
				"Setting clear boundaries with kindness",
				"Problem-solving and conflict resolution",
				"Building strong parent-child relationships",
			},
			Modules: models.StringList{
				"Understanding Positive Discipline",
				"Encouragement vs. Praise",
				"Natural and Logical Consequences",
				"Family Meetings and Routines",
				"Age-Appropriate Expectations",
				"Handling Power Struggles",
				"Time-Out vs. Time-In",
				"Putting It All Together",
			},
			Popularity: 65,
		},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			Name:           "Personal Finance Management",
			Slug:           "finance",
			Description:    "AI-powered personal finance management application that helps you track expenses, manage budgets, and achieve your financial goals.",
			DemoVideoURL:   strPtr("https://www.youtube.com/embed/dQw4w9WgXcQ"),
			FreeTier:       "Basic budgeting, 1 account sync, Monthly reports",
			AdvancedTier:   "Basic budgeting, 1 account sync, Monthly reports, Unlimited accounts, AI insights, Investment tracking, Bill reminders, Custom categories, Export data",
			AdvancedPrice:  250000,
			EnterpriseTier: "Basic budgeting, 1 account sync, Monthly reports, Unlimited accounts, AI insights, Investment tracking, Bill reminders, Custom categories, Export data, White-label solution, API access, Custom integrations, Dedicated support, Priority updates",
		},
		{
			Name:           "Kids & Parenting Application",
			Slug:           "parenting",
			Description:    "Comprehensive parenting companion app with development tracking, activity suggestions, and expert guidance for raising happy, healthy children.",
			DemoVideoURL:   strPtr("https://www.youtube.com/embed/dQw4w9WgXcQ"),
			FreeTier:       "Basic development tracking, 1 child profile, Weekly tips",
			AdvancedTier:   "Basic development tracking, 1 child profile, Weekly tips, Unlimited child profiles, AI parenting assistant, Activity library, Behavior tracking, Screen time management, Milestone alerts",
			AdvancedPrice:  250000,
			EnterpriseTier: "Basic development tracking, 1 child profile, Weekly tips, Unlimited child profiles, AI parenting assistant, Activity library, Behavior tracking, Screen time management, Milestone alerts, School integration, Multi-family access, Custom content, Dedicated support, Advanced analytics",
		},
	}
}

func seedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:    "Jennifer Lee",
			Role:    "CEO",
			Company: "TechStart Inc",
			Image:   "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400",
			Content: "Tify's AI consultancy transformed our business operations completely. Their expertise in implementing AI solutions helped us increase efficiency by 40% and reduce costs significantly. The team is professional, knowledgeable, and genuinely cares about client success.",
			Rating:  5,
		},
		{
			Name:    "Marcus Johnson",
			Role:    "Product Manager",
			Company: "FinanceFlow",
			Image:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400",
			Content: "The financial planning course exceeded all my expectations. Dr. Johnson's teaching style is engaging and the AI tools we learned are now integral to my daily workflow. This investment in education has paid off many times over.",
			Rating:  5,
		},
		{
			Name:    "Priya Patel",
			Role:    "Parent & Entrepreneur",
			Company: "Self-Employed",
			Image:   "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400",
			Content: "As a busy entrepreneur and parent, the parenting course helped me find balance and develop better communication with my children. The strategies I learned have made our family life so much more harmonious. Highly recommended!",
			Rating:  5,
		},
	}
}

func seedTeamMembers() []models.TeamMember {
	return []models.TeamMember{
		{
			Name:  "Dr. Sarah Johnson",
			Title: "Chief AI Strategist",
			Bio:   "Leading AI researcher with 15+ years in financial technology",
			Image: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
			Order: 1,
		},
		{
			Name:  "Michael Chen",
			Title: "Head of Education",
			Bio:   "Child psychologist and parenting expert",
			Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			Order: 2,
		},
		{
			Name:  "David Martinez",
			Title: "Blockchain Consultant",
			Bio:   "Cryptocurrency and blockchain technology specialist",
			Image: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
			Order: 3,
		},
		{
			Name:  "Dr. Emma Williams",
			Title: "Chief Economist",
			Bio:   "Global markets expert and investment strategist",
			Image: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
			Order: 4,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
