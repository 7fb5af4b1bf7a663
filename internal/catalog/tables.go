package catalog

import "github.com/alexanderramin/clientbuddy/internal/domain"

var coreCategories = []Category{
	{Key: domain.CategoryLogo, Label: Label{EN: "Logo Design", ID: "Desain Logo"}},
	{Key: domain.CategoryWeb, Label: Label{EN: "Web Design", ID: "Desain Web"}},
	{Key: domain.CategoryBrand, Label: Label{EN: "Brand Identity", ID: "Identitas Merek"}},
	{Key: domain.CategoryPresentation, Label: Label{EN: "Presentation Design", ID: "Desain Presentasi"}},
	{Key: domain.CategoryCover, Label: Label{EN: "Cover Design", ID: "Desain Sampul"}},
}

var categoryGroups = []CategoryGroup{
	{
		Label: Label{EN: "Branding & Identity", ID: "Branding & Identitas"},
		Items: []Category{
			{Key: domain.CategoryLogoDesign, Label: Label{EN: "Logo Design", ID: "Desain Logo"}},
			{Key: domain.CategoryBrandGuideline, Label: Label{EN: "Brand Guideline", ID: "Panduan Merek"}},
			{Key: domain.CategoryStationery, Label: Label{EN: "Stationery", ID: "Alat Tulis"}},
			{Key: domain.CategoryRebrandingProject, Label: Label{EN: "Rebranding Project", ID: "Proyek Rebranding"}},
			{Key: domain.CategoryIconDesign, Label: Label{EN: "Icon Design", ID: "Desain Ikon"}},
			{Key: domain.CategoryMascotLogo, Label: Label{EN: "Mascot / Character Logo", ID: "Logo Maskot / Karakter"}},
		},
	},
	{
		Label: Label{EN: "Marketing & Advertising", ID: "Pemasaran & Periklanan"},
		Items: []Category{
			{Key: domain.CategoryPoster, Label: Label{EN: "Poster", ID: "Poster"}},
			{Key: domain.CategoryFlyerBrochure, Label: Label{EN: "Flyer / Brochure", ID: "Flyer / Brosur"}},
			{Key: domain.CategoryOnlineBanner, Label: Label{EN: "Online Banner", ID: "Banner Online"}},
			{Key: domain.CategoryBillboard, Label: Label{EN: "Billboard", ID: "Papan Reklame"}},
			{Key: domain.CategorySocialMediaAds, Label: Label{EN: "Social Media Ads", ID: "Iklan Media Sosial"}},
			{Key: domain.CategoryEmailCampaign, Label: Label{EN: "Email Campaign Visuals", ID: "Visual Kampanye Email"}},
			{Key: domain.CategoryPromoPackaging, Label: Label{EN: "Packaging Promo", ID: "Kemasan Promo"}},
		},
	},
	{
		Label: Label{EN: "Digital & Web", ID: "Digital & Web"},
		Items: []Category{
			{Key: domain.CategoryWebsiteUIUX, Label: Label{EN: "Website UI/UX", ID: "UI/UX Situs Web"}},
			{Key: domain.CategoryLandingPage, Label: Label{EN: "Landing Page", ID: "Halaman Arahan"}},
			{Key: domain.CategoryMobileAppUI, Label: Label{EN: "Mobile App UI", ID: "UI Aplikasi Seluler"}},
			{Key: domain.CategoryDashboardDesign, Label: Label{EN: "Dashboard Design", ID: "Desain Dasbor"}},
			{Key: domain.CategoryWebBannerHero, Label: Label{EN: "Web Banner / Hero Section", ID: "Banner Web / Hero Section"}},
			{Key: domain.CategoryWireframePrototype, Label: Label{EN: "Wireframe / Prototype", ID: "Wireframe / Prototipe"}},
		},
	},
	{
		Label: Label{EN: "Print & Editorial", ID: "Cetak & Editorial"},
		Items: []Category{
			{Key: domain.CategoryMagazineBook, Label: Label{EN: "Magazine / Book", ID: "Majalah / Buku"}},
			{Key: domain.CategoryNewsletter, Label: Label{EN: "Newsletter", ID: "Buletin"}},
			{Key: domain.CategoryProductCatalog, Label: Label{EN: "Product Catalog", ID: "Katalog Produk"}},
			{Key: domain.CategoryEventPoster, Label: Label{EN: "Event Poster", ID: "Poster Acara"}},
			{Key: domain.CategoryZineDesign, Label: Label{EN: "Zine Design", ID: "Desain Zine"}},
			{Key: domain.CategoryAnnualReport, Label: Label{EN: "Annual Report", ID: "Laporan Tahunan"}},
		},
	},
	{
		Label: Label{EN: "Social Media & Content", ID: "Media Sosial & Konten"},
		Items: []Category{
			{Key: domain.CategoryInstagramPostStory, Label: Label{EN: "Instagram Post / Story", ID: "Post / Story Instagram"}},
			{Key: domain.CategoryTiktokThumbnailOverlay, Label: Label{EN: "TikTok Thumbnail / Overlay", ID: "Thumbnail / Overlay TikTok"}},
			{Key: domain.CategoryYoutubeBannerThumbnail, Label: Label{EN: "YouTube Banner / Thumbnail", ID: "Banner / Thumbnail YouTube"}},
			{Key: domain.CategoryCarouselTemplate, Label: Label{EN: "Carousel Template", ID: "Template Carousel"}},
			{Key: domain.CategoryMemeDesign, Label: Label{EN: "Meme Design", ID: "Desain Meme"}},
			{Key: domain.CategoryContentPackTemplate, Label: Label{EN: "Content Pack Template", ID: "Template Paket Konten"}},
		},
	},
	{
		Label: Label{EN: "Packaging & Product", ID: "Kemasan & Produk"},
		Items: []Category{
			{Key: domain.CategoryFoodPackaging, Label: Label{EN: "Food Packaging", ID: "Kemasan Makanan"}},
			{Key: domain.CategoryProductLabel, Label: Label{EN: "Product Label", ID: "Label Produk"}},
			{Key: domain.CategoryBoxBagDesign, Label: Label{EN: "Box / Bag Design", ID: "Desain Kotak / Tas"}},
			{Key: domain.CategoryBottleJarLayout, Label: Label{EN: "Bottle / Jar Layout", ID: "Layout Botol / Toples"}},
			{Key: domain.CategoryMerchandise, Label: Label{EN: "Merchandise (T-shirt, etc)", ID: "Merchandise (Kaos, dll)"}},
			{Key: domain.CategoryStickerHangTag, Label: Label{EN: "Sticker / Hang Tag", ID: "Stiker / Hang Tag"}},
		},
	},
	{
		Label: Label{EN: "Illustration & Art", ID: "Ilustrasi & Seni"},
		Items: []Category{
			{Key: domain.CategoryCharacterIllustration, Label: Label{EN: "Character Illustration", ID: "Ilustrasi Karakter"}},
			{Key: domain.CategoryFlatIllustration, Label: Label{EN: "Flat Illustration", ID: "Ilustrasi Datar"}},
			{Key: domain.CategoryDigitalPainting, Label: Label{EN: "Digital Painting", ID: "Lukisan Digital"}},
			{Key: domain.CategoryConceptArt, Label: Label{EN: "Concept Art", ID: "Seni Konsep"}},
			{Key: domain.CategoryChildrensBookArt, Label: Label{EN: "Children’s Book Art", ID: "Seni Buku Anak"}},
			{Key: domain.CategoryVectorArt, Label: Label{EN: "Vector Art", ID: "Seni Vektor"}},
			{Key: domain.CategoryNFTArt, Label: Label{EN: "NFT Art / Collectible", ID: "Seni NFT / Koleksi"}},
		},
	},
	{
		Label: Label{EN: "Typography & Layout", ID: "Tipografi & Tata Letak"},
		Items: []Category{
			{Key: domain.CategoryCustomFontLettering, Label: Label{EN: "Custom Font / Lettering", ID: "Font / Lettering Kustom"}},
			{Key: domain.CategoryTypographicPoster, Label: Label{EN: "Typographic Poster", ID: "Poster Tipografi"}},
			{Key: domain.CategoryLayoutGridDesign, Label: Label{EN: "Layout Grid Design", ID: "Desain Grid Tata Letak"}},
			{Key: domain.CategoryMagazineSpread, Label: Label{EN: "Magazine Spread", ID: "Spread Majalah"}},
			{Key: domain.CategoryMinimalistComposition, Label: Label{EN: "Minimalist Composition", ID: "Komposisi Minimalis"}},
			{Key: domain.CategoryQuoteDesign, Label: Label{EN: "Quote Design", ID: "Desain Kutipan"}},
		},
	},
}

var industryGroups = []IndustryGroup{
	{
		Key:   "group_tech",
		Label: Label{EN: "Information & Digital Technology", ID: "Industri Teknologi Informasi dan Digital"},
		Items: []Industry{
			{Key: "tech_software_dev", Label: Label{EN: "Software & Application Development", ID: "Pengembangan Perangkat Lunak dan Aplikasi"}},
			{Key: "tech_cloud", Label: Label{EN: "Cloud Infrastructure & Data Centers", ID: "Infrastruktur Cloud dan Data Center"}},
			{Key: "tech_ai_ml", Label: Label{EN: "Artificial Intelligence (AI) & Machine Learning", ID: "Kecerdasan Buatan (AI) dan Machine Learning"}},
			{Key: "tech_cybersecurity", Label: Label{EN: "Cybersecurity & Data Encryption", ID: "Cybersecurity dan Enkripsi Data"}},
			{Key: "tech_iot", Label: Label{EN: "Internet of Things (IoT)", ID: "Internet of Things (IoT)"}},
			{Key: "tech_ecommerce", Label: Label{EN: "E-commerce & Marketplaces", ID: "E-commerce dan Marketplace"}},
			{Key: "tech_blockchain", Label: Label{EN: "Blockchain Technology & Crypto", ID: "Teknologi Blockchain dan Kripto"}},
		},
	},
	{
		Key:   "group_creative",
		Label: Label{EN: "Creative & Cultural Industries", ID: "Industri Kreatif & Budaya"},
		Items: []Industry{
			{Key: "creative_design", Label: Label{EN: "Graphic Design & Branding", ID: "Desain Grafis & Branding"}},
			{Key: "creative_photo_video", Label: Label{EN: "Photography & Videography", ID: "Fotografi & Videografi"}},
			{Key: "creative_music", Label: Label{EN: "Music & Sound Production", ID: "Produksi Musik & Suara"}},
			{Key: "creative_fashion", Label: Label{EN: "Fashion & Product Design", ID: "Desain Fesyen & Produk"}},
			{Key: "creative_art", Label: Label{EN: "Fine Arts, Crafts, & Illustration", ID: "Seni Rupa, Kerajinan, & Ilustrasi"}},
			{Key: "creative_architecture", Label: Label{EN: "Creative Architecture", ID: "Arsitektur Kreatif"}},
			{Key: "creative_content", Label: Label{EN: "Digital Content & Influencer Marketing", ID: "Konten Digital & Pemasaran Influencer"}},
		},
	},
	{
		Key:   "group_retail",
		Label: Label{EN: "Retail & Consumer Goods", ID: "Industri Ritel & Barang Konsumen"},
		Items: []Industry{
			{Key: "retail_offline", Label: Label{EN: "Offline Retail & Supermarkets", ID: "Ritel Offline & Supermarket"}},
			{Key: "retail_ecommerce", Label: Label{EN: "E-commerce & Dropshipping", ID: "E-commerce & Dropshipping"}},
			{Key: "retail_beauty", Label: Label{EN: "Beauty & Fashion Products", ID: "Produk Kecantikan & Fesyen"}},
			{Key: "retail_electronics", Label: Label{EN: "Consumer Electronics", ID: "Elektronik Konsumen"}},
			{Key: "retail_fmcg", Label: Label{EN: "FMCG (Fast Moving Consumer Goods)", ID: "FMCG (Barang Konsumen Cepat Bergerak)"}},
		},
	},
	{
		Key:   "group_tourism",
		Label: Label{EN: "Tourism & Entertainment", ID: "Industri Pariwisata & Hiburan"},
		Items: []Industry{
			{Key: "tour_hospitality", Label: Label{EN: "Hotels & Accommodation", ID: "Hotel & Akomodasi"}},
			{Key: "tour_travel_agents", Label: Label{EN: "Travel Agents & Tour Operators", ID: "Agen Perjalanan & Operator Tur"}},
			{Key: "tour_restaurants", Label: Label{EN: "Restaurants & Culinary", ID: "Restoran & Kuliner"}},
			{Key: "tour_events", Label: Label{EN: "Event Organizers & Festivals", ID: "Penyelenggara Acara & Festival"}},
			{Key: "tour_sports", Label: Label{EN: "Sports & Recreation", ID: "Olahraga & Rekreasi"}},
			{Key: "tour_gaming", Label: Label{EN: "Gaming & Esports", ID: "Game & Esports"}},
		},
	},
	{
		Key:   "group_finance",
		Label: Label{EN: "Financial Services", ID: "Industri Jasa Keuangan"},
		Items: []Industry{
			{Key: "fin_banking", Label: Label{EN: "Banking (Conventional & Digital)", ID: "Perbankan (Konvensional dan Digital)"}},
			{Key: "fin_insurance", Label: Label{EN: "Insurance & Reinsurance", ID: "Asuransi dan Reasuransi"}},
			{Key: "fin_investment", Label: Label{EN: "Investment & Capital Markets", ID: "Investasi dan Pasar Modal"}},
			{Key: "fin_fintech", Label: Label{EN: "Fintech & Digital Payments", ID: "Fintech dan Pembayaran Digital"}},
			{Key: "fin_asset_management", Label: Label{EN: "Asset Management & Pension Funds", ID: "Manajemen Aset dan Dana Pensiun"}},
			{Key: "fin_leasing", Label: Label{EN: "Financing & Leasing Institutions", ID: "Lembaga Pembiayaan dan Leasing"}},
		},
	},
	{
		Key:   "group_media",
		Label: Label{EN: "Communications & Media", ID: "Industri Komunikasi dan Media"},
		Items: []Industry{
			{Key: "media_broadcast", Label: Label{EN: "Television, Radio, & Print Media", ID: "Televisi, Radio, dan Media Cetak"}},
			{Key: "media_digital", Label: Label{EN: "Digital Media & Streaming", ID: "Media Digital dan Streaming"}},
			{Key: "media_film", Label: Label{EN: "Film & Animation Production", ID: "Produksi Film dan Animasi"}},
			{Key: "media_advertising", Label: Label{EN: "Advertising, PR, & Branding", ID: "Periklanan, PR, dan Branding"}},
			{Key: "media_social", Label: Label{EN: "Social Media Platforms", ID: "Platform Media Sosial"}},
			{Key: "media_telecom", Label: Label{EN: "Telecommunications (Mobile, Internet, Satellite)", ID: "Telekomunikasi (Seluler, Internet, Satelit)"}},
		},
	},
	{
		Key:   "group_health",
		Label: Label{EN: "Healthcare & Biotechnology", ID: "Industri Kesehatan & Bioteknologi"},
		Items: []Industry{
			{Key: "health_hospitals", Label: Label{EN: "Hospitals & Clinics", ID: "Rumah Sakit & Klinik"}},
			{Key: "health_pharma", Label: Label{EN: "Pharmaceuticals & Medical Devices", ID: "Farmasi & Alat Kesehatan"}},
			{Key: "health_biotech", Label: Label{EN: "Biotechnology & Medical Research", ID: "Bioteknologi & Riset Medis"}},
			{Key: "health_digital", Label: Label{EN: "Digital Health (Telemedicine)", ID: "Kesehatan Digital (Telemedicine)"}},
			{Key: "health_nutrition", Label: Label{EN: "Health & Nutrition Products", ID: "Produk Kesehatan & Gizi"}},
		},
	},
	{
		Key:   "group_education",
		Label: Label{EN: "Education & Training", ID: "Industri Pendidikan & Pelatihan"},
		Items: []Industry{
			{Key: "edu_schools", Label: Label{EN: "Schools & Universities", ID: "Sekolah & Universitas"}},
			{Key: "edu_vocational", Label: Label{EN: "Vocational Education & Courses", ID: "Pendidikan Vokasi & Kursus"}},
			{Key: "edu_edtech", Label: Label{EN: "EdTech (Digital Learning Platforms)", ID: "EdTech (Platform Belajar Digital)"}},
			{Key: "edu_consulting", Label: Label{EN: "Education Consultants", ID: "Konsultan Pendidikan"}},
			{Key: "edu_research", Label: Label{EN: "Academic Research & Development", ID: "Riset & Pengembangan Akademik"}},
		},
	},
	{
		Key:   "group_manufacturing",
		Label: Label{EN: "Manufacturing Industry", ID: "Industri Manufaktur"},
		Items: []Industry{
			{Key: "man_automotive", Label: Label{EN: "Automotive & Vehicle Components", ID: "Otomotif dan Komponen Kendaraan"}},
			{Key: "man_electronics", Label: Label{EN: "Electronics & Semiconductors", ID: "Elektronik dan Semikonduktor"}},
			{Key: "man_machinery", Label: Label{EN: "Industrial Machinery & Equipment", ID: "Mesin dan Peralatan Industri"}},
			{Key: "man_textiles", Label: Label{EN: "Textiles & Garments", ID: "Tekstil dan Garmen"}},
			{Key: "man_chemicals", Label: Label{EN: "Basic Chemicals & Petrochemicals", ID: "Kimia Dasar dan Petrokimia"}},
			{Key: "man_metals", Label: Label{EN: "Metals & Steel", ID: "Logam dan Baja"}},
			{Key: "man_pharma", Label: Label{EN: "Pharmaceuticals & Biotechnology", ID: "Farmasi dan Bioteknologi"}},
			{Key: "man_food", Label: Label{EN: "Processed Food & Beverages", ID: "Makanan dan Minuman Olahan"}},
			{Key: "man_plastics", Label: Label{EN: "Plastics, Rubber, & Packaging", ID: "Plastik, Karet, dan Kemasan"}},
			{Key: "man_furniture", Label: Label{EN: "Household Products & Furniture", ID: "Produk Rumah Tangga dan Furnitur"}},
		},
	},
	{
		Key:   "group_energy",
		Label: Label{EN: "Energy & Natural Resources", ID: "Industri Energi dan Sumber Daya Alam"},
		Items: []Industry{
			{Key: "energy_oil_gas", Label: Label{EN: "Oil & Gas", ID: "Minyak dan Gas Bumi"}},
			{Key: "energy_mining", Label: Label{EN: "Coal & Mineral Mining", ID: "Batu Bara dan Pertambangan Mineral"}},
			{Key: "energy_renewable", Label: Label{EN: "Renewable Energy (Solar, Wind, Hydro)", ID: "Energi Terbarukan (Surya, Angin, Hidro)"}},
			{Key: "energy_utilities", Label: Label{EN: "Electric & Gas Utilities", ID: "Utilitas Listrik dan Gas"}},
			{Key: "energy_water", Label: Label{EN: "Water & Waste Treatment", ID: "Pengolahan Air dan Limbah"}},
		},
	},
	{
		Key:   "group_construction",
		Label: Label{EN: "Construction & Property", ID: "Industri Konstruksi dan Properti"},
		Items: []Industry{
			{Key: "con_building", Label: Label{EN: "Building & Civil Construction", ID: "Konstruksi Bangunan dan Sipil"}},
			{Key: "con_architecture", Label: Label{EN: "Architecture & Interior Design", ID: "Arsitektur dan Desain Interior"}},
			{Key: "con_property", Label: Label{EN: "Commercial & Residential Property", ID: "Properti Komersial dan Perumahan"}},
			{Key: "con_facility_management", Label: Label{EN: "Facility Management", ID: "Pengelolaan Fasilitas (Facility Management)"}},
			{Key: "con_infrastructure", Label: Label{EN: "Road, Bridge, & Transport Infrastructure", ID: "Infrastruktur Jalan, Jembatan, dan Transportasi"}},
		},
	},
	{
		Key:   "group_transport",
		Label: Label{EN: "Transportation & Logistics", ID: "Industri Transportasi dan Logistik"},
		Items: []Industry{
			{Key: "trans_land_sea_air", Label: Label{EN: "Land, Sea, & Air Transportation", ID: "Transportasi Darat, Laut, dan Udara"}},
			{Key: "trans_logistics", Label: Label{EN: "Logistics, Warehousing, & Distribution", ID: "Logistik, Pergudangan, dan Distribusi"}},
			{Key: "trans_freight", Label: Label{EN: "Freight Forwarding & Expedition", ID: "Freight Forwarding dan Ekspedisi"}},
			{Key: "trans_public", Label: Label{EN: "Public Transport & Ride-Hailing", ID: "Transportasi Publik dan Ride-Hailing"}},
			{Key: "trans_supply_chain", Label: Label{EN: "Supply Chain Management", ID: "Manajemen Rantai Pasokan (Supply Chain)"}},
		},
	},
	{
		Key:   "group_agriculture",
		Label: Label{EN: "Agriculture, Fisheries, & Forestry", ID: "Industri Pertanian, Perikanan, & Kehutanan"},
		Items: []Industry{
			{Key: "agri_farming", Label: Label{EN: "Agriculture & Horticulture", ID: "Pertanian & Hortikultura"}},
			{Key: "agri_plantation", Label: Label{EN: "Plantations (Palm Oil, Coffee, Tea, Rubber)", ID: "Perkebunan (Kelapa Sawit, Kopi, Teh, Karet)"}},
			{Key: "agri_livestock", Label: Label{EN: "Livestock & Processed Animal Products", ID: "Peternakan & Produk Hewan Olahan"}},
			{Key: "agri_fisheries", Label: Label{EN: "Fisheries & Aquaculture", ID: "Perikanan & Akuakultur"}},
			{Key: "agri_forestry", Label: Label{EN: "Forestry & Wood Products", ID: "Kehutanan & Produk Kayu"}},
		},
	},
	{
		Key:   "group_nonprofit",
		Label: Label{EN: "Government, Social, & Non-Profit", ID: "Industri Pemerintahan, Sosial, & Nirlaba"},
		Items: []Industry{
			{Key: "nonprofit_gov", Label: Label{EN: "Government Institutions & State-Owned Enterprises", ID: "Institusi Pemerintah & BUMN"}},
			{Key: "nonprofit_social", Label: Label{EN: "Non-Profit & Social Organizations", ID: "Organisasi Nirlaba & Sosial"}},
			{Key: "nonprofit_ngo", Label: Label{EN: "International NGOs", ID: "LSM Internasional"}},
			{Key: "nonprofit_humanitarian", Label: Label{EN: "Humanitarian & Philanthropic Institutions", ID: "Lembaga Kemanusiaan & Filantropi"}},
			{Key: "nonprofit_think_tank", Label: Label{EN: "Think Tanks & Policy Research Institutes", ID: "Lembaga Riset & Kebijakan (Think Tank)"}},
		},
	},
}

var regions = []Region{
	{Key: "region_global", Label: Label{EN: "Global / Any", ID: "Global / Mana saja"}},
	{Key: "region_na", Label: Label{EN: "North America", ID: "Amerika Utara"}},
	{Key: "region_eu", Label: Label{EN: "Europe", ID: "Eropa"}},
	{Key: "region_asia", Label: Label{EN: "Asia", ID: "Asia"}},
	{Key: "region_sa", Label: Label{EN: "South America", ID: "Amerika Selatan"}},
	{Key: "region_af", Label: Label{EN: "Africa", ID: "Afrika"}},
	{Key: "region_oc", Label: Label{EN: "Oceania", ID: "Oseania"}},
}
