package seed

import "portfolioapi/internal/model"

// Default content established on first run, extracted from the published
// resume.

func defaultProfile() model.ProfileUpdate {
	personal := model.PersonalInfo{
		Name:        "Venkata Keerthana Madisetty",
		Title:       "Business Data Analyst",
		Location:    "Arlington, VA",
		Email:       "keerthanamadisetty2@gmail.com",
		Phone:       "(202) 681-9470",
		LinkedIn:    "https://www.linkedin.com/in/keerthana-madisetty-60a10b214",
		Summary:     "Experienced Business Data Analyst with 3+ years of expertise in analyzing complex datasets, developing predictive models, and delivering actionable insights. Specialized in fraud detection, claims automation, and regulatory reporting with proven track record of improving operational efficiency by 33% and fraud detection accuracy by 22%.",
		CurrentRole: "Business Data Analyst at Liberty Mutual Insurance",
	}

	skills := model.Skills{
		Programming: []string{
			"Python (Pandas, NumPy, Scikit-learn, Matplotlib)",
			"R (Statistical Analysis)",
			"SQL (Complex Joins, CTEs, Window Functions)",
			"DAX (Power BI)",
		},
		DataVisualization: []string{
			"Power BI (Advanced Dashboards, RLS, Power Query)",
			"Tableau (Desktop & Server)",
			"SAP BusinessObjects",
			"Excel (Pivot Tables, Power Query, VBA)",
		},
		CloudTechnologies: []string{
			"AWS (S3, Glue, Redshift, SageMaker)",
			"Azure (Data Lake, Data Factory, Synapse Analytics, ML Studio)",
			"ETL Processes & Data Pipelines",
			"Data Warehousing",
		},
		MachineLearning: []string{
			"Predictive Modeling",
			"Fraud Detection Algorithms",
			"Risk Scoring Models",
			"Statistical Analysis & Hypothesis Testing",
		},
		BusinessIntelligence: []string{
			"KPI Development & Framework Design",
			"Regulatory Compliance Reporting (IRDA, RBI)",
			"Cross-functional Stakeholder Management",
			"Agile Methodologies (JIRA, Confluence)",
		},
	}

	experience := []model.Experience{
		{
			Company:  "Liberty Mutual Insurance",
			Position: "Business Data Analyst",
			Duration: "Apr 2025 - Present",
			Location: "USA",
			Achievements: []string{
				"Delivered Liberty Claims360 analytics platform, partnering with stakeholders to define reporting requirements",
				"Improved fraud detection efficiency by 22% using predictive analytics with Python and AWS SageMaker",
				"Accelerated claims settlement by 33% through optimized data pipeline using AWS Glue, Power BI, and SQL",
				"Enhanced insights visibility by 40% with Power BI dashboards integrated with AWS Redshift",
				"Extracted and consolidated data using SQL and Excel, leveraging AWS S3 and Glue for data processing",
			},
			Technologies: []string{"AWS (S3, Glue, Redshift, SageMaker)", "Power BI", "Python", "SQL", "Excel"},
		},
		{
			Company:  "Hexaware Technologies",
			Position: "Jr. Business Data Analyst",
			Duration: "Feb 2021 - Jul 2023",
			Location: "India",
			Achievements: []string{
				"Improved loan risk assessment accuracy by 23% through predictive risk scoring models using Python and Azure ML",
				"Automated regulatory reporting using SAP BusinessObjects, ensuring IRDA and RBI compliance",
				"Built interactive dashboards in Power BI and Tableau integrated with Azure Synapse Analytics",
				"Collaborated with stakeholders using JIRA and Confluence to translate requirements into actionable user stories",
				"Optimized claims settlement processes and refined loan eligibility rules through customer behavior analysis",
			},
			Technologies: []string{"Azure (Data Lake, Data Factory, Synapse)", "Python", "Power BI", "Tableau", "SAP BusinessObjects"},
		},
	}

	education := []model.Education{
		{
			Degree:          "Master of Science in Data Science",
			Institution:     "George Washington University",
			Location:        "Washington DC, USA",
			Duration:        "Graduated May 2025",
			RelevantCourses: []string{"Machine Learning", "Statistical Methods", "Data Mining", "Big Data Analytics", "Business Intelligence"},
		},
		{
			Degree:          "Bachelor of Technology in Computer Science",
			Institution:     "MVJ College of Engineering",
			Location:        "Bangalore, India",
			Duration:        "Graduated May 2022",
			RelevantCourses: []string{"Database Management Systems", "Data Structures", "Algorithms", "Software Engineering"},
		},
	}

	certifications := []model.Certification{
		{
			Name:         "Salesforce Certified: Tableau Desktop Foundations",
			Issuer:       "Salesforce",
			Year:         "2024",
			CredentialID: "TDF-2024-001",
		},
		{
			Name:         "AWS Certified Cloud Practitioner",
			Issuer:       "Amazon Web Services",
			Year:         "2023",
			CredentialID: "AWS-CCP-2023-001",
		},
	}

	return model.ProfileUpdate{
		Personal:       &personal,
		Skills:         &skills,
		Experience:     &experience,
		Education:      &education,
		Certifications: &certifications,
	}
}

func defaultProjects() []model.Project {
	return []model.Project{
		{
			Title:       "Claims360 Analytics Platform",
			Company:     "Liberty Mutual Insurance",
			Type:        model.ProjectTypeProfessional,
			Description: "End-to-end analytics platform for claims intelligence, fraud detection, and process automation",
			Impact: []string{
				"22% improvement in fraud detection efficiency",
				"33% reduction in claims settlement cycle time",
				"40% increase in insights visibility for stakeholders",
			},
			Technologies: []string{"AWS (S3, Glue, Redshift, SageMaker)", "Python", "Power BI", "SQL"},
			Details:      "Designed and implemented comprehensive analytics solution including automated ETL pipelines, predictive fraud detection models, and real-time interactive dashboards for claims performance monitoring.",
			Featured:     true,
			DisplayOrder: 1,
		},
		{
			Title:       "Unified Claims & Credit Risk Analytics",
			Company:     "Hexaware Technologies",
			Type:        model.ProjectTypeProfessional,
			Description: "Centralized Azure-based analytics platform for financial services client",
			Impact: []string{
				"23% improvement in loan risk assessment accuracy",
				"Automated IRDA and RBI regulatory compliance reporting",
				"Streamlined credit risk evaluation processes",
			},
			Technologies: []string{"Azure (Data Factory, Synapse Analytics, ML Studio)", "Python", "Power BI", "Tableau"},
			Details:      "Built integrated analytics solution with automated data pipelines, predictive risk scoring models, and comprehensive regulatory reporting capabilities.",
			Featured:     true,
			DisplayOrder: 2,
		},
		{
			Title:       "Customer Churn Prediction Model",
			Company:     "George Washington University",
			Type:        model.ProjectTypeAcademic,
			Description: "Machine learning model to predict customer churn for subscription-based business",
			Impact: []string{
				"Achieved 85% accuracy in churn prediction",
				"Identified top 5 factors contributing to customer churn",
				"Developed actionable retention strategies",
			},
			Technologies: []string{"Python", "Scikit-learn", "Pandas", "Matplotlib", "Jupyter"},
			Details:      "Developed end-to-end ML pipeline including data preprocessing, feature engineering, model selection, and performance evaluation using various algorithms including Random Forest and Logistic Regression.",
			Featured:     true,
			DisplayOrder: 3,
		},
		{
			Title:       "Healthcare Analytics Dashboard",
			Company:     "George Washington University",
			Type:        model.ProjectTypeAcademic,
			Description: "Interactive dashboard analyzing healthcare utilization patterns and patient outcomes",
			Impact: []string{
				"Visualized trends across 50,000+ patient records",
				"Identified cost optimization opportunities",
				"Created predictive models for patient readmission risk",
			},
			Technologies: []string{"Tableau", "Python", "SQL", "Statistical Analysis"},
			Details:      "Comprehensive analysis of healthcare data including patient demographics, treatment patterns, and outcome metrics with interactive visualizations for healthcare administrators.",
			Featured:     true,
			DisplayOrder: 4,
		},
	}
}

func defaultVisualizations() []model.Visualization {
	return []model.Visualization{
		{
			Title:       "Claims Performance Dashboard",
			Description: "Interactive Power BI dashboard showing claims processing metrics and KPIs",
			Metrics:     []string{"Average Settlement Time: 12 days", "Fraud Detection Rate: 94%", "Customer Satisfaction: 4.2/5"},
			ChartType:   "Multi-metric Dashboard",
			ChartData: map[string]any{
				"claims_processed":      892,
				"fraud_detected":        94,
				"avg_settlement":        12,
				"customer_satisfaction": 4.2,
			},
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			Title:       "Risk Score Distribution Analysis",
			Description: "Statistical analysis of risk scoring model performance across different customer segments",
			Metrics:     []string{"Model Accuracy: 89%", "Precision: 87%", "Recall: 91%"},
			ChartType:   "Performance Metrics",
			ChartData: map[string]any{
				"accuracy":          89,
				"precision":         87,
				"recall":            91,
				"risk_distribution": map[string]any{"low": 65, "medium": 28, "high": 7},
			},
			IsActive:     true,
			DisplayOrder: 2,
		},
		{
			Title:       "Customer Churn Prediction Analysis",
			Description: "Machine learning model results showing feature importance and prediction accuracy",
			Metrics:     []string{"Churn Prediction Accuracy: 85%", "Top Risk Factor: Usage Decline", "Monthly Savings: $50K"},
			ChartType:   "ML Model Results",
			ChartData: map[string]any{
				"churn_rate":      15.2,
				"monthly_savings": 48000,
				"top_factors":     []string{"Usage Decline", "Support Tickets", "Payment Delays", "Feature Adoption", "Login Frequency"},
			},
			IsActive:     true,
			DisplayOrder: 3,
		},
	}
}
