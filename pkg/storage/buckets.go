package storage

// Bucket is a logical partition of the object store. Each blob lives in
// exactly one bucket; visibility and size policy are fixed per bucket.
type Bucket string

const (
	BucketIDDocuments       Bucket = "id_documents"
	BucketVehicleImages     Bucket = "vehicle_images"
	BucketCustomerDocuments Bucket = "customer_documents"
	BucketSaleDocuments     Bucket = "sale_documents"
)

// MaxObjectSize is the per-file limit applied to every bucket.
const MaxObjectSize = 10 * 1024 * 1024

type BucketPolicy struct {
	Name      Bucket `json:"name"`
	Public    bool   `json:"public"`
	SizeLimit int64  `json:"size_limit"`
}

// Buckets enumerates every bucket the application owns. Only vehicle
// images are publicly readable.
var Buckets = []BucketPolicy{
	{Name: BucketIDDocuments, Public: false, SizeLimit: MaxObjectSize},
	{Name: BucketVehicleImages, Public: true, SizeLimit: MaxObjectSize},
	{Name: BucketCustomerDocuments, Public: false, SizeLimit: MaxObjectSize},
	{Name: BucketSaleDocuments, Public: false, SizeLimit: MaxObjectSize},
}

func PolicyFor(bucket Bucket) (BucketPolicy, bool) {
	for _, policy := range Buckets {
		if policy.Name == bucket {
			return policy, true
		}
	}
	return BucketPolicy{}, false
}

func ValidBucket(bucket Bucket) bool {
	_, ok := PolicyFor(bucket)
	return ok
}
