// Package bytecompress provides the byte-compressor implementations that sit
// at the bottom of cydec's encode pipeline: an opaque back-end compressor
// treated as an interchangeable collaborator.
//
// cydec fixes LZ4 as the back end for the CYDEC/v1 frame format, since the
// frame does not tag which compressor produced its payload and the back end
// must therefore stay fixed per format version. The Zstd and S2
// implementations are still exported for callers who build their own codec
// handles directly against a non-standard frame of their own devising.
package bytecompress

// Compressor compresses a byte slice produced by the element-kind engine.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice back into the element-kind engine's
// input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor into the pluggable back-end
// abstraction cydec's frame format calls its byte compressor.
//
// Implementations MUST be deterministic and safe for concurrent use from
// multiple goroutines without external synchronization, since the parallel
// chunk engine invokes a single shared Codec from every worker.
type Codec interface {
	Compressor
	Decompressor
}
