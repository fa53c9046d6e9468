// Package decompile turns an encoded resource archive back into loose files.
//
// A game ships as an index file plus one or more disk files. Every disk is a
// single LECF container holding one LFLF container per room. Decompiling a
// disk walks those rooms in stream order and, for every leaf block, writes
// the raw payload to "<room>/[<prefix>]<TAG>/<n>.bin" and records it in the
// room's descriptor "<room>/room.scu". Once all disks are done, Finish writes
// "project.txt", listing each room with its name and owning disk.
//
// The number n of a leaf comes from the first source that applies:
//
//  1. the index directory for the tag, looked up by the block's header offset;
//  2. the first four payload bytes of a self-numbered block (LSC2);
//  3. a per-room, per-tag counter starting at 1.
//
// A tag with a directory that has no entry for the block is an error, not a
// reason to fall through to the next source.
//
// Basic usage:
//
//	out, _ := sink.NewDir("out")
//	stats, err := decompile.Run(ctx, "game.he0", out.Write, decompile.Options{})
package decompile
