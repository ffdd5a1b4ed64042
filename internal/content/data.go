package content

var profile = Profile{
	Name:      "Pavan Kumar Talluri",
	ShortName: "Pavan",
	Roles:     []string{"Full Stack Developer", "Data Analyst"},
	Headline:  "A full-stack engineer with a strong analytical foundation who builds end-to-end digital systems and transforms data into strategic insight.",
	Summary: `A full-stack engineer with a strong analytical foundation who builds end-to-end digital systems and transforms
	data into strategic insight. I create reliable, scalable applications while simultaneously analyzing complex information
	to identify patterns, optimize performance, and guide informed business decisions, ensuring that every product is both
	technically sound and commercially intelligent.`,
	AboutTitle: "Engineering Intelligent Software",
	About: []string{
		`I am a Full Stack Software Engineer and Data Science graduate with hands-on experience building scalable web
		platforms and machine-learning-enabled applications. My work bridges software engineering and data science,
		allowing me to create systems that are both technically robust and insight-driven.`,
		`Across internships and real-world projects, I have worked end-to-end, from crafting responsive user interfaces
		and secure backend APIs to designing authentication systems, microservice architectures, and real-time data
		workflows. I focus on writing clean, maintainable code that supports performance, reliability, and long-term growth.`,
		`With a strong foundation in machine learning, statistical modeling, and data-driven experimentation, I use
		analytical thinking to improve product behavior, optimize system performance, and guide engineering decisions.
		My goal is to build software that is not only functional, but intelligent, measurable, and built to scale in
		production environments.`,
	},
	Email:       "talluripavankumar88@gmail.com",
	Phone:       "+91 7793931658",
	Image:       "My_image/my_image.png",
	ImageAlt:    "Pavan Kumar Talluri - Full Stack Developer",
	WelcomeText: "Welcome to the World of Pavan Kumar",
	BuiltWith:   "Built with Go and Gin",
}

var staticLinks = []Link{
	{ID: LinkResume, Label: "Download Resume", URL: "https://drive.google.com/drive/folders/116ZXqTCaBt4zgQqPPxT2KJWPxcWJ8Wzz?usp=drive_link"},
	{ID: LinkGitHub, Label: "GitHub", URL: "https://github.com/PavanTalluri45?tab=repositories"},
	{ID: LinkLinkedIn, Label: "LinkedIn", URL: "https://www.linkedin.com/in/pavankumartalluri45/"},
}

var quickLinks = []QuickLink{
	{Name: "Home", Href: "#home"},
	{Name: "About", Href: "#about"},
	{Name: "Engineering Work", Href: "#engineering"},
	{Name: "Professional Journey", Href: "#journey"},
	{Name: "Technical Credibility", Href: "#certifications"},
}

var techIcons = []string{
	// Programming & Query Languages
	"python", "javascript", "typescript", "mysql",
	// Frontend Engineering
	"react", "nextdotjs", "tailwindcss", "html5", "css",
	// Backend & APIs
	"nodedotjs", "express", "graphql",
	// Databases & Data Infrastructure
	"mysql", "postgresql", "mongodb", "redis",
	// Data Science & Machine Learning
	"pandas", "numpy", "scikitlearn", "microsoftpowerbi",
	// Cloud, DevOps & Deployment
	"amazonwebservices", "docker",
	// Version Control & Developer Tools
	"git", "github",
}

var skills = []Skill{
	{Name: "Python", Category: "Language"},
	{Name: "JavaScript", Category: "Language"},
	{Name: "TypeScript", Category: "Language"},
	{Name: "SQL", Category: "Language"},

	{Name: "React.js", Category: "Frontend"},
	{Name: "Next.js", Category: "Frontend"},
	{Name: "Tailwind CSS", Category: "Frontend"},
	{Name: "UI Component Libraries", Category: "Frontend"},
	{Name: "Responsive UI", Category: "Frontend"},

	{Name: "Node.js", Category: "Backend"},
	{Name: "Express.js", Category: "Backend"},
	{Name: "REST APIs", Category: "Backend"},
	{Name: "GraphQL", Category: "Backend"},
	{Name: "Microservices Architecture", Category: "Backend"},
	{Name: "WebSockets", Category: "Backend"},

	{Name: "MySQL", Category: "Database"},
	{Name: "PostgreSQL", Category: "Database"},
	{Name: "MongoDB", Category: "Database"},
	{Name: "Redis", Category: "Database"},
	{Name: "Firebase", Category: "Database"},

	{Name: "Pandas", Category: "Data Science"},
	{Name: "NumPy", Category: "Data Science"},
	{Name: "Matplotlib", Category: "Data Science"},
	{Name: "Seaborn", Category: "Data Science"},
	{Name: "Scikit-learn", Category: "Data Science"},
	{Name: "Statistical Analysis", Category: "Data Science"},
	{Name: "Machine Learning", Category: "Data Science"},
	{Name: "Power BI", Category: "Data Science"},

	{Name: "AWS", Category: "Cloud"},
	{Name: "Docker", Category: "Cloud"},
	{Name: "CI/CD", Category: "Cloud"},

	{Name: "Git", Category: "Tools"},
	{Name: "GitHub", Category: "Tools"},
}

var projects = []Project{
	{
		Title:        "Complete Authentication System",
		Description:  "A production-ready authentication platform implementing secure user registration, login, OTP-based email verification, password recovery, JWT and refresh token workflows, and Redis-powered rate limiting, built using a microservice-oriented backend architecture with Next.js and Node.js for scalability and security.",
		Technologies: []string{"Next.js", "TypeScript", "Node.js", "Express.js", "MySQL", "Redis", "JWT", "Microservices"},
		RepoLink:     "https://github.com/PavanTalluri45/complete-authentication-system",
	},
	{
		Title:        "Guest Identity Verification System for a Retirement Party",
		Description:  "A full-stack event management and guest verification platform built for a large-scale retirement party, featuring secure guest registration, QR-based identity verification, real-time attendance tracking, and live analytics powered by WebSockets for monitoring check-ins, meal preferences, and event statistics.",
		Technologies: []string{"React", "Node.js", "Express.js", "MongoDB", "WebSockets", "jsQR"},
		RepoLink:     "https://github.com/PavanTalluri45/Invitation_application",
	},
	{
		Title:        "E-commerce Microservices Platform",
		Description:  "A full-stack MERN e-commerce platform featuring responsive product browsing, cart management, and secure checkout, built on a microservice-based backend architecture with separate Order, Cart, and Payment services exposed via RESTful APIs and integrated with Stripe for real-world payment processing.",
		Technologies: []string{"React", "Tailwind CSS", "Node.js", "Express.js", "MongoDB", "Stripe", "Microservices", "REST APIs"},
		RepoLink:     "https://github.com/PavanTalluri45/E-commerceapplication-MERNStack",
	},
	{
		Title:        "Personal Portfolio",
		Description:  "A high-performance, fully responsive developer portfolio designed to showcase full-stack and data engineering projects with smooth transitions, interactive components, and optimized layout for both desktop and mobile users.",
		Technologies: []string{"Go", "Gin", "HTMX", "Redis", "SQLite", "Docker"},
		RepoLink:     "https://github.com/PavanTalluri45",
	},
	{
		Title:        "Credit Card Financial Analysis Dashboard",
		Description:  "A comprehensive financial analytics solution analyzing credit card transactions and customer behavior through interactive Power BI dashboards, combining SQL-based data modeling, real-time data refresh, and custom measures to deliver actionable insights from both transaction and customer perspectives.",
		Technologies: []string{"Power BI", "SQL", "Data Modeling", "Data Visualization", "Financial Analytics"},
		RepoLink:     "https://github.com/PavanTalluri45/CreditCard-Financial-Analysis-PowerBI",
	},
	{
		Title:        "Social Media Analytics Dashboard",
		Description:  "An interactive Twitter analytics and marketing intelligence dashboard built in Power BI, converting large-scale social media data into actionable insights using Power Query for data cleansing and DAX measures for real-time campaign performance tracking and KPI monitoring.",
		Technologies: []string{"Power BI", "Power Query", "DAX", "Data Visualization", "Marketing Analytics"},
		RepoLink:     "https://github.com/PavanTalluri45/RealTimeTwitterAnalyticsDashboard-PowerBI",
	},
	{
		Title:        "Telco Customer Churn Analysis",
		Description:  "A comprehensive data analytics project performing exploratory data analysis and customer segmentation on telecom usage data, identifying a 26.54% churn rate and uncovering key drivers such as contract type and senior citizen status using Python-based data cleaning, statistical analysis, and visualization techniques.",
		Technologies: []string{"Python", "Pandas", "NumPy", "Matplotlib", "Seaborn", "Jupyter Notebook", "EDA"},
		RepoLink:     "https://github.com/PavanTalluri45/TelcoCustomerChurnAnalysis",
	},
	{
		Title:        "Supplement Sales Analysis & Forecasting",
		Description:  "A data science and machine learning project analyzing multi-year supplement sales data (2020–2025), generating revenue and platform performance insights, and forecasting future sales using advanced regression and ensemble models achieving up to 99.93% predictive accuracy.",
		Technologies: []string{"Python", "Pandas", "NumPy", "Matplotlib", "Seaborn", "Scikit-Learn", "Machine Learning", "Jupyter Notebook"},
		RepoLink:     "https://github.com/PavanTalluri45/SupplementSalesAnalysis",
	},
}

var caseStudies = []CaseStudy{
	{
		Title:       "Complete Authentication System",
		Tagline:     "Enterprise-Grade Security Platform",
		Description: "A production-ready authentication platform implementing secure user registration, login, OTP-based email verification, password recovery, JWT and refresh token workflows, and Redis-powered rate limiting.",
		Problem:     "Modern web applications require robust, scalable, and secure authentication to prevent unauthorized access and data breaches. Building this from scratch is complex and error-prone.",
		Solution:    "Designed a microservice-oriented architecture separating Auth and Email services, ensuring scalability. Implemented rigorous security measures like rate limiting via Redis and secure token management.",
		Architecture: []string{
			"Microservices Architecture (Auth Service + Email Service)",
			"Redis for Rate Limiting & Token Blacklisting",
			"MySQL with Sequelize ORM for Relational Data",
			"Secure HTTP-only Cookies for Tokens",
		},
		Features: []string{
			"Secure User Registration & Login",
			"OTP-based Email Verification",
			"Password Recovery Flow",
			"JWT Access & Refresh Token Rotation",
			"High Performance Rate Limiting",
		},
		Stack:    []string{"Next.js", "TypeScript", "Node.js", "Express.js", "MySQL", "Redis", "JWT"},
		RepoLink: "https://github.com/PavanTalluri45/complete-authentication-system",
		Image:    "project_images/casestudy1.webp",
	},
	{
		Title:       "Guest Identity Verification System",
		Tagline:     "Real-time Event Management",
		Description: "A full-stack event management and guest verification platform featuring secure guest registration, QR-based identity verification, real-time attendance tracking, and live analytics.",
		Problem:     "Managing large-scale events manually leads to long queues, verification errors, and lack of real-time data on guest attendance.",
		Solution:    "Built a QR-code based system allowing instant check-ins. Integrated WebSockets for a live dashboard that updates instantly as guests arrive.",
		Architecture: []string{
			"Real-time WebSocket Communication",
			"QR Code Generation & Scanning Logic",
			"MongoDB Aggregations for Live Stats",
			"Responsive Admin Dashboard",
		},
		Features: []string{
			"Instant QR Check-in",
			"Real-time Attendance Dashboard",
			"Guest Analytics & Reporting",
			"Secure Admin Protocols",
		},
		Stack:    []string{"React", "Node.js", "Express.js", "MongoDB", "WebSockets", "jsQR"},
		RepoLink: "https://github.com/PavanTalluri45/Invitation_application",
		Image:    "project_images/casestudy2.webp",
	},
	{
		Title:       "E-commerce Microservices Platform",
		Tagline:     "Scalable MERN Stack Architecture",
		Description: "A full-stack MERN e-commerce platform featuring responsive product browsing, cart management, and secure checkout, built on a microservice-based backend architecture.",
		Problem:     "Monolithic e-commerce apps become hard to scale and maintain as features grow.",
		Solution:    "Decoupled services into Orders, Cart, and Payments. This ensures that a failure in one service (e.g., Cart) doesn't bring down the entire product catalog.",
		Architecture: []string{
			"Decoupled Microservices",
			"RESTful API Gateway Pattern",
			"Stripe Payment Integration",
			"State Management with Redux Toolkit",
		},
		Features: []string{
			"Product Catalog & Search",
			"Cart & Wishlist Management",
			"Secure Stripe Checkout",
			"Order History & Tracking",
		},
		Stack:    []string{"React", "Tailwind CSS", "Node.js", "Express.js", "MongoDB", "Stripe"},
		RepoLink: "https://github.com/PavanTalluri45/E-commerceapplication-MERNStack",
		Image:    "project_images/casestudy3.webp",
	},
	{
		Title:       "Portfolio Site",
		Tagline:     "High-Performance Digital Presence",
		Description: "A high-performance, fully responsive developer portfolio, designed to showcase full-stack and data engineering projects.",
		Problem:     "Static portfolios often lack engagement and fail to demonstrate modern engineering capabilities.",
		Solution:    "Server-rendered templates with HTMX fragments keep pages fast, while a small Go backend adds session handling, privacy-conscious analytics and a contact form.",
		Architecture: []string{
			"Go + Gin Server Rendering",
			"HTMX Partial Updates",
			"Redis-backed Sessions",
			"SQLite Analytics Store",
		},
		Features: []string{
			"Interactive Hero Section",
			"Project Showcase with Animations",
			"Responsive Design",
			"Performance Optimized",
		},
		Stack:    []string{"Go", "Gin", "HTMX", "Redis", "SQLite", "Docker"},
		RepoLink: "https://github.com/PavanTalluri45",
		Image:    "project_images/casestudy4.webp",
	},
	{
		Title:       "Credit Card Financial Dashboard",
		Tagline:     "Power BI Financial Analytics",
		Description: "A comprehensive financial analytics solution analyzing credit card transactions and customer behavior through interactive Power BI dashboards.",
		Problem:     "Raw financial transaction data is difficult to interpret and identify trends in without visualization.",
		Solution:    "Created interactive dashboards with drill-down capabilities to analyze spending patterns by demographics and card type.",
		Architecture: []string{
			"Power BI Dashboarding",
			"SQL Data Modeling",
			"DAX Measures",
			"Data Transformation Pipelines",
		},
		Features: []string{
			"Transaction Trend Analysis",
			"Customer Segmentation",
			"Revenue Breakdown",
			"Real-time Data Refresh",
		},
		Stack:    []string{"Power BI", "SQL", "Data Modeling", "Data Visualization"},
		RepoLink: "https://github.com/PavanTalluri45/CreditCard-Financial-Analysis-PowerBI",
		Image:    "project_images/casestudy5.webp",
	},
	{
		Title:       "Social Media Analytics",
		Tagline:     "Marketing Intelligence Dashboard",
		Description: "An interactive Twitter analytics dashboard converting large-scale social media data into actionable insights using Power Query and DAX.",
		Problem:     "Marketing teams struggle to gauge campaign effectiveness across millions of social interactions.",
		Solution:    "Automated data cleaning with Power Query and built KPIs to track engagement and sentiment.",
		Architecture: []string{
			"Power BI",
			"Power Query ETL",
			"DAX for Logic",
			"Social Media Data APIs",
		},
		Features: []string{
			"Campaign Performance Tracking",
			"Sentiment Analysis Indicators",
			"User Engagement Metrics",
			"Viral Trend Identification",
		},
		Stack:    []string{"Power BI", "Power Query", "DAX", "Data Visualization"},
		RepoLink: "https://github.com/PavanTalluri45/RealTimeTwitterAnalyticsDashboard-PowerBI",
		Image:    "project_images/casestudy6.webp",
	},
	{
		Title:       "Telco Customer Churn Analysis",
		Tagline:     "Predictive Customer Analytics",
		Description: "Exploratory data analysis and customer segmentation on telecom usage data, identifying a 26.54% churn rate and key drivers.",
		Problem:     "Telecom companies lose revenue due to undetected customer churn factors.",
		Solution:    "Performed deep EDA to identify that contract type and senior citizen status are top predictors of churn.",
		Architecture: []string{
			"Python Data Science Stack",
			"Pandas for Data Manipulation",
			"Seaborn/Matplotlib for Viz",
			"Jupyter Notebook Environment",
		},
		Features: []string{
			"Churn Rate Calculation",
			"Demographic Segmentation",
			"Correlation Analysis",
			"Actionable Business Insights",
		},
		Stack:    []string{"Python", "Pandas", "NumPy", "Matplotlib", "Seaborn"},
		RepoLink: "https://github.com/PavanTalluri45/TelcoCustomerChurnAnalysis",
		Image:    "project_images/casestudy7.webp",
	},
	{
		Title:       "Supplement Sales Forecasting",
		Tagline:     "ML-Based Sales Prediction",
		Description: "Machine learning project analyzing sales data (2020–2025) and forecasting future revenue with up to 99.93% predictive accuracy.",
		Problem:     "Inventory mismanagement leads to stockouts or overstocking, hurting profitability.",
		Solution:    "Trained ensemble regression models to predict future sales demand with high precision.",
		Architecture: []string{
			"Scikit-Learn Machine Learning",
			"Regression Models",
			"Time Series Analysis",
			"Model Evaluation Pipelines",
		},
		Features: []string{
			"Revenue Trend Analysis",
			"Future Sales Prediction",
			"Model Accuracy Validation",
			"Platform Performance Review",
		},
		Stack:    []string{"Python", "Pandas", "Scikit-Learn", "Machine Learning"},
		RepoLink: "https://github.com/PavanTalluri45/SupplementSalesAnalysis",
		Image:    "project_images/casestudy8.webp",
	},
}

var experience = []Experience{
	{
		Role:    "Data Analyst Intern",
		Company: "NullClass Edtech Private Limited",
		Date:    "Nov 2024 – Apr 2025",
		Highlights: []string{
			"Built an interactive Power BI business intelligence dashboard providing real-time tracking of key performance metrics and emerging trends for strategic decision-making.",
			"Performed large-scale data cleaning and transformation using Power Query, improving data quality by 40% and establishing reliable automated processing pipelines.",
			"Developed advanced DAX measures and calculated columns to extract actionable insights from social media engagement data, enabling more targeted and data-driven content strategies.",
		},
	},
	{
		Role:    "Front End Developer Intern",
		Company: "I AIM Labs",
		Date:    "Nov 2024 – Feb 2025",
		Highlights: []string{
			"Developed responsive, cross-device user interfaces using React.js and Tailwind CSS to deliver consistent and intuitive user experiences.",
			"Improved application performance and accessibility by optimizing page load times, reducing redundant code, and applying modern web accessibility best practices.",
			"Integrated RESTful APIs in collaboration with backend teams and followed Agile development workflows using Git, including code reviews, sprint planning, and iterative releases.",
		},
	},
}

var education = []Education{
	{
		Degree:      "Bachelor of Technology in Computer Science and Engineering (Data Science)",
		Institution: "Chalapathi Institute of Technology, Guntur",
		Date:        "2020 – 2025",
		Description: "Completed a specialized undergraduate program in Data Science and Computer Science, covering data analytics, machine learning, databases, and full-stack development, graduating with a CGPA of 6.70/10.",
	},
	{
		Degree:      "Intermediate (12th Grade)",
		Institution: "Sri Chaitanya Junior College, Tenali",
		Date:        "2018 – 2020",
		Description: "Focused on Mathematics, Physics, and Chemistry with a strong academic foundation in analytical and problem-solving skills, achieving a CGPA of 8.11/10.",
	},
	{
		Degree:      "Secondary School (10th Grade)",
		Institution: "Dr. KKR Gowtham School, Tenali",
		Date:        "2018",
		Description: "Completed secondary education with a CGPA of 9.3/10, demonstrating strong academic performance and discipline.",
	},
}

var journey = []JourneyPhase{
	{
		Phase:       "Industry Exposure",
		Description: "Applying theoretical knowledge to real-world business problems through internships.",
		Icon:        "briefcase",
		Color:       "text-blue-400",
		Items: []JourneyItem{
			{
				Title:        "Data Analyst Intern",
				Organization: "NullClass Edtech Private Limited",
				Period:       "Nov 2024 - Apr 2025",
				Desc:         "Built an interactive Power BI business intelligence dashboard to deliver real-time visibility into key performance indicators and emerging trends, supporting data-driven strategic decision-making. Executed large-scale data cleaning and transformation using Power Query, improving overall data quality by 40 percent and establishing reliable automated data pipelines. Designed advanced DAX measures and calculated columns to generate actionable insights from social media engagement data, enabling more precise, performance-driven content and marketing strategies.",
				Tags:         []string{"Power BI", "Power Query", "DAX", "Data Visualization", "Marketing Analytics"},
			},
			{
				Title:        "Developer Intern",
				Organization: "I AIM Labs",
				Period:       "Nov 2024 - Feb 2025",
				Desc:         "Developed responsive, cross-device user interfaces with React.js and Tailwind CSS to deliver a consistent and intuitive user experience, while improving performance and accessibility through optimized page loads, cleaner code architecture, and modern web accessibility standards. Collaborated closely with backend teams to integrate RESTful APIs and worked within Agile development workflows using Git for version control, code reviews, sprint planning, and iterative feature releases.",
				Tags: []string{
					"React.js", "Tailwind CSS", "Responsive Design", "Web Performance Optimization",
					"Web Accessibility", "RESTful API Integration", "Agile Development",
					"Git Version Control", "Code Reviews", "Cross-Browser Compatibility",
				},
			},
		},
	},
	{
		Phase:       "Foundation",
		Description: "Building the core pillars of Computer Science and Data Analytics.",
		Icon:        "graduation-cap",
		Color:       "text-emerald-400",
		Items: []JourneyItem{
			{
				Title:        "B.Tech in CSE (Data Science)",
				Organization: "Chalapathi Institute of Technology",
				Period:       "2020/21 - 2025",
				Desc:         "Completed a specialized undergraduate program in Data Science and Computer Science, covering data analytics, machine learning, databases, and full-stack development, graduating with a CGPA of 6.70/10.",
				Tags: []string{
					"Data Science", "Machine Learning", "Python", "SQL", "Data Analytics", "Statistics",
					"Probability", "Database Management Systems", "Data Structures & Algorithms",
					"Full-Stack Development", "Computer Science Fundamentals", "Software Engineering",
				},
			},
			{
				Title:        "Intermediate (12th Grade)",
				Organization: "Sri Chaitanya Junior College",
				Period:       "2018 - 2020",
				Desc:         "Focused on Mathematics, Physics, and Chemistry with a strong academic foundation in analytical and problem-solving skills, achieving a CGPA of 8.11/10.",
				Tags:         []string{"Mathematics", "Physics", "Chemistry"},
			},
			{
				Title:        "Secondary School (10th Grade)",
				Organization: "Dr. KKR Gowtham School",
				Period:       "2018",
				Desc:         "Completed secondary education with a CGPA of 9.3/10, demonstrating strong academic performance and discipline.",
				Tags:         []string{"Academics", "Discipline", "Foundation"},
			},
		},
	},
}

var certifications = []Certification{
	{
		Name:            "Complete Python Course",
		Issuer:          "Aajhub & Sapienz Recruit",
		Date:            "February 2025",
		Description:     "Completed an intensive online Python program focused on core programming, object-oriented concepts, data structures, and practical problem solving. The course was jointly conducted by Aajhub and Sapienz Recruit and validated through formal assessment and certification.",
		Skills:          []string{"Python Programming", "Object-Oriented Programming", "Data Structures", "Problem Solving", "Fundamentals of Software Development"},
		CertificateLink: "https://drive.google.com/file/d/1-j_Bh6lN2A1TCjnemZRTdt8JfUPdHG4t/view?usp=drive_link",
	},
	{
		Name:            "SQL – Basic to Advanced",
		Issuer:          "Aajhub & Sapienz Recruit",
		Date:            "June 2025",
		Description:     "Completed an intensive SQL program covering relational database fundamentals through advanced querying. The course included joins, subqueries, aggregations, window functions, and performance-oriented query design for real-world data analysis and backend systems.",
		Skills:          []string{"SQL", "Relational Databases", "Joins & Subqueries", "Window Functions", "Data Aggregation", "Query Optimization"},
		CertificateLink: "https://drive.google.com/file/d/1-y2h6bL1sfbIp_AQOhS--hw0mgvKNbJa/view?usp=drive_link",
	},
	{
		Name:            "Full Stack Web Development Course",
		Issuer:          "Aajhub & Sapienz Recruit",
		Date:            "November 2025",
		Description:     "Completed an intensive full stack web development program covering modern frontend and backend technologies, RESTful APIs, database integration, and real-world project development. The course was delivered online and jointly conducted by Aajhub and Sapienz Recruit.",
		Skills:          []string{"HTML", "CSS", "JavaScript", "Frontend Development", "Backend Development", "RESTful APIs", "Database Integration", "Full Stack Web Development"},
		CertificateLink: "https://drive.google.com/file/d/15vGHVHvN1DPLe-wVC8UgxsDOq5tpAcAs/view?usp=drive_link",
	},
	{
		Name:            "Machine Learning with Python",
		Issuer:          "Cognitive Class (IBM Developer Skills Network)",
		Date:            "November 2024",
		Description:     "Successfully completed an IBM-powered Machine Learning program covering supervised and unsupervised learning, model training, evaluation, and practical implementation using Python.",
		Skills:          []string{"Machine Learning", "Python", "Supervised Learning", "Unsupervised Learning", "Model Evaluation", "Data Analysis"},
		CertificateLink: "https://courses.cognitiveclass.ai/certificates/1d3a13a0f19043c897059c5dcb7af664",
	},
	{
		Name:            "Complete DSA Course",
		Issuer:          "Aajhub & Sapienz Recruit",
		Date:            "October 2025",
		Description:     "Successfully completed an intensive Data Structures and Algorithms program covering problem-solving techniques, algorithmic thinking, and core data structures used in software engineering and competitive programming.",
		Skills:          []string{"Data Structures", "Algorithms", "Problem Solving", "Time and Space Complexity", "Coding Interview Preparation"},
		CertificateLink: "https://drive.google.com/file/d/1USwFDwEbmUdP1G5YnveiV7K6Z36hZocH/view?usp=drive_link",
	},
}
