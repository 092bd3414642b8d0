package geo

import (
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// cities is the embedded gazetteer. It covers major Indian cities plus the
// world capitals and metros most common in birth place lookups.
var cities = []entity.City{
	{Name: "Mumbai", State: "Maharashtra", Country: "India", Latitude: 19.0760, Longitude: 72.8777, Timezone: "Asia/Kolkata"},
	{Name: "Delhi", State: "Delhi", Country: "India", Latitude: 28.7041, Longitude: 77.1025, Timezone: "Asia/Kolkata"},
	{Name: "New Delhi", State: "Delhi", Country: "India", Latitude: 28.6139, Longitude: 77.2090, Timezone: "Asia/Kolkata"},
	{Name: "Bengaluru", State: "Karnataka", Country: "India", Latitude: 12.9716, Longitude: 77.5946, Timezone: "Asia/Kolkata"},
	{Name: "Hyderabad", State: "Telangana", Country: "India", Latitude: 17.3850, Longitude: 78.4867, Timezone: "Asia/Kolkata"},
	{Name: "Chennai", State: "Tamil Nadu", Country: "India", Latitude: 13.0827, Longitude: 80.2707, Timezone: "Asia/Kolkata"},
	{Name: "Kolkata", State: "West Bengal", Country: "India", Latitude: 22.5726, Longitude: 88.3639, Timezone: "Asia/Kolkata"},
	{Name: "Pune", State: "Maharashtra", Country: "India", Latitude: 18.5204, Longitude: 73.8567, Timezone: "Asia/Kolkata"},
	{Name: "Ahmedabad", State: "Gujarat", Country: "India", Latitude: 23.0225, Longitude: 72.5714, Timezone: "Asia/Kolkata"},
	{Name: "Jaipur", State: "Rajasthan", Country: "India", Latitude: 26.9124, Longitude: 75.7873, Timezone: "Asia/Kolkata"},
	{Name: "Surat", State: "Gujarat", Country: "India", Latitude: 21.1702, Longitude: 72.8311, Timezone: "Asia/Kolkata"},
	{Name: "Lucknow", State: "Uttar Pradesh", Country: "India", Latitude: 26.8467, Longitude: 80.9462, Timezone: "Asia/Kolkata"},
	{Name: "Kanpur", State: "Uttar Pradesh", Country: "India", Latitude: 26.4499, Longitude: 80.3319, Timezone: "Asia/Kolkata"},
	{Name: "Nagpur", State: "Maharashtra", Country: "India", Latitude: 21.1458, Longitude: 79.0882, Timezone: "Asia/Kolkata"},
	{Name: "Indore", State: "Madhya Pradesh", Country: "India", Latitude: 22.7196, Longitude: 75.8577, Timezone: "Asia/Kolkata"},
	{Name: "Bhopal", State: "Madhya Pradesh", Country: "India", Latitude: 23.2599, Longitude: 77.4126, Timezone: "Asia/Kolkata"},
	{Name: "Patna", State: "Bihar", Country: "India", Latitude: 25.5941, Longitude: 85.1376, Timezone: "Asia/Kolkata"},
	{Name: "Vadodara", State: "Gujarat", Country: "India", Latitude: 22.3072, Longitude: 73.1812, Timezone: "Asia/Kolkata"},
	{Name: "Varanasi", State: "Uttar Pradesh", Country: "India", Latitude: 25.3176, Longitude: 82.9739, Timezone: "Asia/Kolkata"},
	{Name: "Amritsar", State: "Punjab", Country: "India", Latitude: 31.6340, Longitude: 74.8723, Timezone: "Asia/Kolkata"},
	{Name: "Chandigarh", State: "Chandigarh", Country: "India", Latitude: 30.7333, Longitude: 76.7794, Timezone: "Asia/Kolkata"},
	{Name: "Kochi", State: "Kerala", Country: "India", Latitude: 9.9312, Longitude: 76.2673, Timezone: "Asia/Kolkata"},
	{Name: "Thiruvananthapuram", State: "Kerala", Country: "India", Latitude: 8.5241, Longitude: 76.9366, Timezone: "Asia/Kolkata"},
	{Name: "Coimbatore", State: "Tamil Nadu", Country: "India", Latitude: 11.0168, Longitude: 76.9558, Timezone: "Asia/Kolkata"},
	{Name: "Madurai", State: "Tamil Nadu", Country: "India", Latitude: 9.9252, Longitude: 78.1198, Timezone: "Asia/Kolkata"},
	{Name: "Visakhapatnam", State: "Andhra Pradesh", Country: "India", Latitude: 17.6868, Longitude: 83.2185, Timezone: "Asia/Kolkata"},
	{Name: "Guwahati", State: "Assam", Country: "India", Latitude: 26.1445, Longitude: 91.7362, Timezone: "Asia/Kolkata"},
	{Name: "Bhubaneswar", State: "Odisha", Country: "India", Latitude: 20.2961, Longitude: 85.8245, Timezone: "Asia/Kolkata"},
	{Name: "Dehradun", State: "Uttarakhand", Country: "India", Latitude: 30.3165, Longitude: 78.0322, Timezone: "Asia/Kolkata"},
	{Name: "Srinagar", State: "Jammu and Kashmir", Country: "India", Latitude: 34.0837, Longitude: 74.7973, Timezone: "Asia/Kolkata"},
	{Name: "Ujjain", State: "Madhya Pradesh", Country: "India", Latitude: 23.1765, Longitude: 75.7885, Timezone: "Asia/Kolkata"},
	{Name: "Haridwar", State: "Uttarakhand", Country: "India", Latitude: 29.9457, Longitude: 78.1642, Timezone: "Asia/Kolkata"},
	{Name: "Rishikesh", State: "Uttarakhand", Country: "India", Latitude: 30.0869, Longitude: 78.2676, Timezone: "Asia/Kolkata"},
	{Name: "Tirupati", State: "Andhra Pradesh", Country: "India", Latitude: 13.6288, Longitude: 79.4192, Timezone: "Asia/Kolkata"},

	{Name: "Kathmandu", Country: "Nepal", Latitude: 27.7172, Longitude: 85.3240, Timezone: "Asia/Kathmandu"},
	{Name: "Colombo", Country: "Sri Lanka", Latitude: 6.9271, Longitude: 79.8612, Timezone: "Asia/Colombo"},
	{Name: "Dhaka", Country: "Bangladesh", Latitude: 23.8103, Longitude: 90.4125, Timezone: "Asia/Dhaka"},
	{Name: "Karachi", Country: "Pakistan", Latitude: 24.8607, Longitude: 67.0011, Timezone: "Asia/Karachi"},
	{Name: "Lahore", Country: "Pakistan", Latitude: 31.5204, Longitude: 74.3587, Timezone: "Asia/Karachi"},
	{Name: "Dubai", Country: "United Arab Emirates", Latitude: 25.2048, Longitude: 55.2708, Timezone: "Asia/Dubai"},
	{Name: "Singapore", Country: "Singapore", Latitude: 1.3521, Longitude: 103.8198, Timezone: "Asia/Singapore"},
	{Name: "Kuala Lumpur", Country: "Malaysia", Latitude: 3.1390, Longitude: 101.6869, Timezone: "Asia/Kuala_Lumpur"},
	{Name: "Bangkok", Country: "Thailand", Latitude: 13.7563, Longitude: 100.5018, Timezone: "Asia/Bangkok"},
	{Name: "Hong Kong", Country: "China", Latitude: 22.3193, Longitude: 114.1694, Timezone: "Asia/Hong_Kong"},
	{Name: "Tokyo", Country: "Japan", Latitude: 35.6762, Longitude: 139.6503, Timezone: "Asia/Tokyo"},
	{Name: "Sydney", State: "New South Wales", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093, Timezone: "Australia/Sydney"},
	{Name: "Melbourne", State: "Victoria", Country: "Australia", Latitude: -37.8136, Longitude: 144.9631, Timezone: "Australia/Melbourne"},
	{Name: "Auckland", Country: "New Zealand", Latitude: -36.8509, Longitude: 174.7645, Timezone: "Pacific/Auckland"},

	{Name: "London", Country: "United Kingdom", Latitude: 51.5074, Longitude: -0.1278, Timezone: "Europe/London"},
	{Name: "Birmingham", Country: "United Kingdom", Latitude: 52.4862, Longitude: -1.8904, Timezone: "Europe/London"},
	{Name: "Leicester", Country: "United Kingdom", Latitude: 52.6369, Longitude: -1.1398, Timezone: "Europe/London"},
	{Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522, Timezone: "Europe/Paris"},
	{Name: "Berlin", Country: "Germany", Latitude: 52.5200, Longitude: 13.4050, Timezone: "Europe/Berlin"},
	{Name: "Frankfurt", Country: "Germany", Latitude: 50.1109, Longitude: 8.6821, Timezone: "Europe/Berlin"},
	{Name: "Amsterdam", Country: "Netherlands", Latitude: 52.3676, Longitude: 4.9041, Timezone: "Europe/Amsterdam"},
	{Name: "Moscow", Country: "Russia", Latitude: 55.7558, Longitude: 37.6173, Timezone: "Europe/Moscow"},

	{Name: "New York", State: "New York", Country: "United States", Latitude: 40.7128, Longitude: -74.0060, Timezone: "America/New_York"},
	{Name: "Jersey City", State: "New Jersey", Country: "United States", Latitude: 40.7178, Longitude: -74.0431, Timezone: "America/New_York"},
	{Name: "Chicago", State: "Illinois", Country: "United States", Latitude: 41.8781, Longitude: -87.6298, Timezone: "America/Chicago"},
	{Name: "Houston", State: "Texas", Country: "United States", Latitude: 29.7604, Longitude: -95.3698, Timezone: "America/Chicago"},
	{Name: "Dallas", State: "Texas", Country: "United States", Latitude: 32.7767, Longitude: -96.7970, Timezone: "America/Chicago"},
	{Name: "San Francisco", State: "California", Country: "United States", Latitude: 37.7749, Longitude: -122.4194, Timezone: "America/Los_Angeles"},
	{Name: "San Jose", State: "California", Country: "United States", Latitude: 37.3382, Longitude: -121.8863, Timezone: "America/Los_Angeles"},
	{Name: "Los Angeles", State: "California", Country: "United States", Latitude: 34.0522, Longitude: -118.2437, Timezone: "America/Los_Angeles"},
	{Name: "Seattle", State: "Washington", Country: "United States", Latitude: 47.6062, Longitude: -122.3321, Timezone: "America/Los_Angeles"},
	{Name: "Atlanta", State: "Georgia", Country: "United States", Latitude: 33.7490, Longitude: -84.3880, Timezone: "America/New_York"},
	{Name: "Toronto", State: "Ontario", Country: "Canada", Latitude: 43.6532, Longitude: -79.3832, Timezone: "America/Toronto"},
	{Name: "Vancouver", State: "British Columbia", Country: "Canada", Latitude: 49.2827, Longitude: -123.1207, Timezone: "America/Vancouver"},
}
